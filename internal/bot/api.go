package bot

import (
	"bigtwo/internal/domain"
)

// Move represents the decision made by the AI.
type Move struct {
	Pass bool
	Hand domain.Hand
}

// Cards returns the cards of the chosen hand, or nil for a pass.
func (m Move) Cards() []domain.Card {
	if m.Pass || m.Hand == nil {
		return nil
	}
	return m.Hand.Cards()
}

// Turn is the view of the table a bot decides from.
type Turn struct {
	Seat      int
	Hand      []domain.Card
	Top       domain.Hand // nil when opening a trick
	CardsLeft []int       // indexed by seat
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(turn Turn) (Move, error)
}
