package domain

import "math"

// comboExponent maps each combo pattern to the power its base card is raised
// to. Kept apart from the Subtype constants so reordering them cannot change
// valuation.
var comboExponent = map[Subtype]float64{
	Straight:      1,
	Flush:         3,
	FullHouse:     5,
	Bomb:          7,
	StraightFlush: 9,
	RoyalFlush:    11,
}

const comboScale = 5

// Gauge computes the numeric strength of a validated grouping.
//
//	Single: card value
//	Double: 2 * higher card value
//	Combo:  base^exponent * 5
//
// The combo base is the highest card, except for FullHouse and Bomb where it
// is the highest card of the triple or quad. Strengths are only compared
// within a kind, and subtypes can cross over: a FullHouse of Threes scores
// below a Straight topped by the Two of Spades.
func Gauge(kind Kind, sub Subtype, cards []Card) (float32, error) {
	switch kind {
	case KindSingle:
		if len(cards) == 0 {
			return 0, ErrEmptySelection
		}
		return highest(cards).Value(), nil
	case KindDouble:
		if len(cards) == 0 {
			return 0, ErrEmptySelection
		}
		return 2 * highest(cards).Value(), nil
	case KindCombo:
		exp, ok := comboExponent[sub]
		if !ok {
			return 0, ErrUnknownCombo
		}
		base := baseCards(sub, cards)
		if len(base) == 0 {
			return 0, ErrEmptySelection
		}
		v := float64(highest(base).Value())
		return float32(math.Pow(v, exp) * comboScale), nil
	}
	return 0, ErrBadLength
}

// baseCards selects the cards whose highest member sets a combo's base.
func baseCards(sub Subtype, cards []Card) []Card {
	var group int
	switch sub {
	case FullHouse:
		group = 3
	case Bomb:
		group = 4
	default:
		return cards
	}
	byRank := make(map[Rank][]Card, len(cards))
	for _, c := range cards {
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}
	for _, g := range byRank {
		if len(g) == group {
			return g
		}
	}
	return nil
}

func highest(cards []Card) Card {
	top := cards[0]
	for _, c := range cards[1:] {
		if top.Less(c) {
			top = c
		}
	}
	return top
}
