package terminal

import (
	"fmt"

	"github.com/paulhankin/poker"

	"bigtwo/internal/domain"
)

var pokerSuits = map[domain.Suit]poker.Suit{
	domain.Diamond: poker.Diamond,
	domain.Club:    poker.Club,
	domain.Heart:   poker.Heart,
	domain.Spade:   poker.Spade,
}

// toPoker converts a card to the evaluator's encoding, where Ace is 1 and
// the remaining ranks count from 2 to King=13.
func toPoker(c domain.Card) (poker.Card, error) {
	var zero poker.Card
	suit, ok := pokerSuits[c.Suit]
	if !ok || !c.Rank.Valid() {
		return zero, fmt.Errorf("%w: %v", domain.ErrBadCard, c)
	}
	var rank poker.Rank
	switch c.Rank {
	case domain.Ace:
		rank = 1
	case domain.Two:
		rank = 2
	default:
		rank = poker.Rank(c.Rank) + 2
	}
	return poker.MakeCard(suit, rank)
}

// Describe names a 5-card hand in poker terms, e.g. "straight, seven high".
// Other sizes have no poker name and return "".
func Describe(cards []domain.Card) (string, error) {
	if len(cards) != 5 {
		return "", nil
	}
	pc := make([]poker.Card, len(cards))
	for i, c := range cards {
		var err error
		if pc[i], err = toPoker(c); err != nil {
			return "", err
		}
	}
	return poker.Describe(pc)
}
