package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Prompt        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	SelectionBg   lipgloss.Style
	CardHeader    lipgloss.Style
	RepoName      lipgloss.Style
	RepoDesc      lipgloss.Style
	Stars         lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusInfo    lipgloss.Style
	Popup         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		CardHeader:    lipgloss.NewStyle().Bold(true),
		RepoName:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		RepoDesc:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Stars:         lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),            // gray
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
	}
}
