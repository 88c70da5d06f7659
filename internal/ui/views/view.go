package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"ghscout/internal/ui/input/types"
)

// Status line messages for the search area
const (
	MsgLoadingUsers = "Loading users..."
	MsgSearchHint   = "Press / to search GitHub users"
)

// SearchView is the render input for the search status line
type SearchView struct {
	Query    string
	Loading  bool
	Error    string
	Searched bool
	Count    int
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Search         SearchView
	Cards          []CardView
	SelectedIndex  int
	ViewportOffset int
	SpinnerFrame   string
	ShowHelp       bool
	HelpModel      help.Model
	Keys           types.KeyMap
	TextInput      string
	InputMode      string
}

// Layout records where things landed in the last render so the model can
// keep the selection visible and map mouse clicks back to cards.
type Layout struct {
	// ListTop is the screen row of the first visible list line
	ListTop int
	// Offset is the number of list lines scrolled off the top
	Offset int
	// Height is the number of list lines that fit on screen
	Height int
	// HeaderLines holds the list line index of each card header
	HeaderLines []int
}

// CardAt returns the card whose header is drawn at screen row y
func (l Layout) CardAt(y int) (int, bool) {
	line := y - l.ListTop + l.Offset
	if y < l.ListTop || line >= l.Offset+l.Height {
		return 0, false
	}
	for i, h := range l.HeaderLines {
		if h == line {
			return i, true
		}
	}
	return 0, false
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	accountRender *AccountRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showDescriptions bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		accountRender: NewAccountRenderer(styles, showDescriptions),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) (string, Layout) {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}
	// main container padding
	innerWidth := width - 4
	innerHeight := height - 2

	var head []string
	head = append(head, r.styles.Title.Render("ghscout"))

	if state.InputMode != "" {
		head = append(head, state.TextInput)
	} else {
		head = append(head, r.styles.Dim.Render(MsgSearchHint))
	}
	head = append(head, r.renderSearchStatus(state.Search, state.SpinnerFrame))
	head = append(head, "")

	footer := ""
	if !state.ShowHelp {
		footer = state.HelpModel.View(state.Keys)
	}

	listHeight := innerHeight - len(head) - 1
	if listHeight < 1 {
		listHeight = 1
	}

	listLines, headers := r.renderCards(state, innerWidth)
	layout := Layout{
		ListTop:     1 + len(head), // top padding row
		Height:      listHeight,
		HeaderLines: headers,
	}
	layout.Offset = clampOffset(state.ViewportOffset, listHeight, len(listLines), selectedHeader(headers, state.SelectedIndex))

	end := layout.Offset + listHeight
	if end > len(listLines) {
		end = len(listLines)
	}
	visible := listLines[layout.Offset:end]

	content := &strings.Builder{}
	content.WriteString(strings.Join(head, "\n"))
	content.WriteString("\n")
	content.WriteString(strings.Join(visible, "\n"))

	// push the footer to the bottom
	if pad := listHeight - len(visible); pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main.MaxHeight(height)
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(RenderHelpContent(), height, width, r.styles.Popup), layout
	}

	return finalContent, layout
}

// renderSearchStatus renders the single status line under the search box
func (r *Renderer) renderSearchStatus(s SearchView, spinnerFrame string) string {
	switch {
	case s.Loading:
		msg := MsgLoadingUsers
		if spinnerFrame != "" {
			msg = spinnerFrame + " " + msg
		}
		return r.styles.StatusLoading.Render(msg)
	case s.Error != "":
		return r.styles.StatusError.Render("Error: " + s.Error)
	case s.Searched && s.Count == 0:
		return r.styles.Dim.Render(fmt.Sprintf("No users found for %q.", s.Query))
	case s.Searched:
		return r.styles.StatusInfo.Render(fmt.Sprintf("Showing users for %q", s.Query))
	}
	return ""
}

// renderCards renders every card and records the list line of each header
func (r *Renderer) renderCards(state ViewState, width int) ([]string, []int) {
	lines := make([]string, 0, len(state.Cards))
	headers := make([]int, 0, len(state.Cards))

	for i, card := range state.Cards {
		card.Selected = i == state.SelectedIndex
		headers = append(headers, len(lines))
		lines = append(lines, r.accountRender.RenderHeader(card, width))
		if card.Expanded {
			lines = append(lines, r.accountRender.RenderBody(card, width, state.SpinnerFrame)...)
		}
	}
	return lines, headers
}

func selectedHeader(headers []int, selected int) int {
	if selected < 0 || selected >= len(headers) {
		return -1
	}
	return headers[selected]
}

// clampOffset keeps the selected line on screen and the offset in range
func clampOffset(offset, height, total, selectedLine int) int {
	if selectedLine >= 0 {
		if selectedLine < offset {
			offset = selectedLine
		} else if selectedLine >= offset+height {
			offset = selectedLine - height + 1
		}
	}
	if max := total - height; offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// RenderHelpContent renders the help information
func RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	row := func(k, d string) string {
		return fmt.Sprintf("  %s %s\n", keyStyle.Render(fmt.Sprintf("%-12s", k)), descStyle.Render(d))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("ghscout Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(row("/", "Enter a username to search"))
	help.WriteString(row("Enter", "Run the search"))
	help.WriteString(row("Esc", "Leave the search box"))

	help.WriteString(sectionStyle.Render("Results"))
	help.WriteString("\n")
	help.WriteString(row("↑/↓, j/k", "Move between accounts"))
	help.WriteString(row("gg/G", "Go to top/bottom"))
	help.WriteString(row("Enter, Space", "Expand/collapse account"))
	help.WriteString(row("→/l", "Expand/collapse account"))
	help.WriteString(row("←/h", "Collapse account"))
	help.WriteString(row("Click", "Expand/collapse account"))

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(row("?", "Toggle this help"))
	help.WriteString(row("q, Ctrl+C", "Quit"))

	return strings.TrimRight(help.String(), "\n")
}
