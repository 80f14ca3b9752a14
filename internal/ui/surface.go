package ui

import (
	"reel/internal/domain"
)

// deckStage exposes the deck to the slider as its stage
type deckStage struct {
	deck          *domain.Deck
	width, height int
}

func (s *deckStage) Items() int { return s.deck.Len() }

func (s *deckStage) Size() (int, int) { return s.width, s.height }

// markers records what the slider wants the buttons and dots to show.
// The view reads it on every render.
type markers struct {
	selected     []bool
	prevDisabled bool
	nextDisabled bool
}

func (m *markers) Assign(n int) {
	m.selected = make([]bool, n)
}

func (m *markers) SetSelected(i int, selected bool) {
	if i >= 0 && i < len(m.selected) {
		m.selected[i] = selected
	}
}

func (m *markers) SetPrevDisabled(disabled bool) { m.prevDisabled = disabled }
func (m *markers) SetNextDisabled(disabled bool) { m.nextDisabled = disabled }
