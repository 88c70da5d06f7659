package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"ghscout/internal/ui/input/types"
)

// SearchPlaceholder is shown in the empty search box
const SearchPlaceholder = "Enter username"

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model, promptStyle lipgloss.Style) *SearchMode {
	ti.Placeholder = SearchPlaceholder
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", promptStyle, ti),
	}
}
