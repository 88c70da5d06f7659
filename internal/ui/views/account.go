package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ghscout/internal/domain"
	"ghscout/internal/lifecycle"
)

// Messages shown inside an expanded card
const (
	MsgLoadingRepos = "Loading repositories..."
	MsgNoRepos      = "No repositories found."
	MsgNotLoaded    = "Click to load repositories."
)

// CardView is the render input for one account row
type CardView struct {
	Login    string
	Expanded bool
	Selected bool
	Repos    lifecycle.Lifecycle[[]domain.Repository]
}

// AccountRenderer handles rendering of account cards
type AccountRenderer struct {
	styles           *Styles
	showDescriptions bool
}

// NewAccountRenderer creates a new account renderer
func NewAccountRenderer(styles *Styles, showDescriptions bool) *AccountRenderer {
	return &AccountRenderer{
		styles:           styles,
		showDescriptions: showDescriptions,
	}
}

// RenderHeader renders the clickable header line of a card
func (r *AccountRenderer) RenderHeader(card CardView, width int) string {
	arrow := "▶"
	if card.Expanded {
		arrow = "▼"
	}
	line := fmt.Sprintf("%s %s", arrow, card.Login)

	if card.Selected {
		if width > 0 {
			if w := lipgloss.Width(line); w < width {
				line += strings.Repeat(" ", width-w)
			}
		}
		return r.styles.SelectionBg.Inherit(r.styles.CardHeader).Render(line)
	}
	return r.styles.CardHeader.Render(line)
}

// RenderBody renders the lines under an expanded card. Exactly one of the
// loading, error, empty, not-loaded or list forms is produced, chosen from
// the account's lifecycle.
func (r *AccountRenderer) RenderBody(card CardView, width int, spinnerFrame string) []string {
	const indent = "    "

	switch card.Repos.State() {
	case lifecycle.Loading:
		msg := MsgLoadingRepos
		if spinnerFrame != "" {
			msg = spinnerFrame + " " + msg
		}
		return []string{indent + r.styles.StatusLoading.Render(msg)}
	case lifecycle.Failed:
		return []string{indent + r.styles.StatusError.Render("Error: "+card.Repos.Err)}
	case lifecycle.Unfetched:
		return []string{indent + r.styles.Dim.Render(MsgNotLoaded)}
	}

	if len(card.Repos.Value) == 0 {
		return []string{indent + r.styles.Dim.Render(MsgNoRepos)}
	}

	lines := make([]string, 0, len(card.Repos.Value)*2)
	for _, repo := range card.Repos.Value {
		lines = append(lines, r.renderRepository(repo, indent, width)...)
	}
	return lines
}

func (r *AccountRenderer) renderRepository(repo domain.Repository, indent string, width int) []string {
	name := r.styles.RepoName.Render(repo.Name)
	stars := r.styles.Stars.Render(fmt.Sprintf("★ %d", repo.StarCount))

	// right-align the star count when there is room
	gap := 2
	if width > 0 {
		if pad := width - lipgloss.Width(indent) - lipgloss.Width(name) - lipgloss.Width(stars); pad > gap {
			gap = pad
		}
	}
	lines := []string{indent + name + strings.Repeat(" ", gap) + stars}

	if r.showDescriptions {
		desc := repo.DescriptionOrDefault()
		if max := width - lipgloss.Width(indent) - 2; width > 0 && max > 3 && lipgloss.Width(desc) > max {
			desc = truncate(desc, max)
		}
		lines = append(lines, indent+"  "+r.styles.RepoDesc.Render(desc))
	}
	return lines
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
