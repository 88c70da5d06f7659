package state

import (
	"ghscout/internal/controller"
	"ghscout/internal/domain"
)

// AppState contains all the presentation state. Search results and
// repository data live in the stores; this only tracks what the screen
// shows on top of them.
type AppState struct {
	// Cards mirror the current search results, one per account
	Cards []*controller.Card

	// Selection state
	SelectedIndex int // currently selected card

	// UI state
	ViewportOffset int // list lines scrolled off the top
	ViewportHeight int // list lines that fit on screen
	ShowHelp       bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Cards: make([]*controller.Card, 0),
	}
}

// SetAccounts replaces the cards with fresh collapsed cards for accounts.
// Cards are rebuilt on every search, so expansion never survives a search.
func (s *AppState) SetAccounts(accounts []domain.Account) {
	s.Cards = controller.NewCards(accounts)
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// SelectedCard returns the card under the cursor, or nil
func (s *AppState) SelectedCard() *controller.Card {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Cards) {
		return nil
	}
	return s.Cards[s.SelectedIndex]
}

// Select moves the cursor to index, clamped to the card range
func (s *AppState) Select(index int) {
	if index >= len(s.Cards) {
		index = len(s.Cards) - 1
	}
	if index < 0 {
		index = 0
	}
	s.SelectedIndex = index
}
