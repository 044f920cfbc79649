package domain

import (
	"fmt"
	"slices"
)

// Classify validates cards and builds the matching hand for player.
//
// One card is a Single and two cards of equal rank a Double. Five cards are
// matched against the combo patterns from strongest to weakest:
// RoyalFlush, StraightFlush, Bomb, FullHouse, Straight, Flush.
// Every failure wraps ErrInvalidHand; out of range cards also wrap ErrBadCard.
func Classify(cards []Card, player int) (Hand, error) {
	for _, c := range cards {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: rank %d suit %d", ErrInvalidCard, uint8(c.Rank), uint8(c.Suit))
		}
	}
	switch len(cards) {
	case 1:
		return NewSingle(cards[0], player), nil
	case 2:
		d, err := NewDouble(cards[0], cards[1], player)
		if err != nil {
			return nil, err
		}
		return d, nil
	case 5:
		c, err := NewCombo(cards, player)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, ErrBadLength
	}
}

// comboSubtype expects five distinct cards sorted by value.
func comboSubtype(sorted []Card) Subtype {
	flush := sameSuit(sorted)
	run := consecutive(sorted)

	switch {
	case flush && run && sorted[0].Rank == Ten && sorted[4].Rank == Ace:
		return RoyalFlush
	case flush && run:
		return StraightFlush
	}

	counts := rankCounts(sorted)
	switch {
	case slices.Contains(counts, 4):
		return Bomb
	case slices.Contains(counts, 3) && slices.Contains(counts, 2):
		return FullHouse
	case run:
		return Straight
	case flush:
		return Flush
	}
	return SubtypeNone
}

func sameSuit(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// consecutive reports whether sorted rank weights step by exactly one.
// There is no wrap-around: Two sits above Ace only.
func consecutive(sorted []Card) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank.Weight() != sorted[i-1].Rank.Weight()+1 {
			return false
		}
	}
	return true
}

// rankCounts returns the multiplicity of each distinct rank.
func rankCounts(cards []Card) []int {
	byRank := make(map[Rank]int, len(cards))
	for _, c := range cards {
		byRank[c.Rank]++
	}
	out := make([]int, 0, len(byRank))
	for _, n := range byRank {
		out = append(out, n)
	}
	return out
}

func hasRepeats(cards []Card) bool {
	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if _, ok := seen[c]; ok {
			return true
		}
		seen[c] = struct{}{}
	}
	return false
}
