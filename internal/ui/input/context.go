package input

import (
	"ghscout/internal/logic"
	"ghscout/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  *state.AppState
	Search logic.SearchState
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of cards
func (c *ModelContext) TotalItems() int {
	return len(c.State.Cards)
}

// IsOnCard returns true if the cursor rests on a card
func (c *ModelContext) IsOnCard() bool {
	return c.State.SelectedCard() != nil
}

// IsCardExpanded returns true if the card under the cursor is expanded
func (c *ModelContext) IsCardExpanded() bool {
	card := c.State.SelectedCard()
	return card != nil && card.Expanded
}

// SearchQuery returns the current search query
func (c *ModelContext) SearchQuery() string {
	if c.Search == nil {
		return ""
	}
	return c.Search.Query()
}
