package domain

import (
	"fmt"
	"math/rand"
)

// DeckSize is the number of distinct cards in a deck.
const DeckSize = 52

// Deck is an ordered set of the 52 distinct cards.
type Deck []Card

// NewDeck returns a sorted 52-card deck.
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, r := range Ranks {
		for _, s := range Suits {
			deck = append(deck, NewCard(r, s))
		}
	}
	return deck
}

// Shuffle permutes the deck in place.
func (d Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) { d[i], d[j] = d[j], d[i] })
}

// Divide deals the deck into n equal hands, in deck order. Divisions that do
// not split the deck evenly are rejected rather than dealt unevenly.
func (d Deck) Divide(n int) ([][]Card, error) {
	if n <= 0 || n > len(d) || len(d)%n != 0 {
		return nil, fmt.Errorf("%w: %d cards into %d hands", ErrInvalidChunks, len(d), n)
	}
	size := len(d) / n
	hands := make([][]Card, n)
	for i := range hands {
		hands[i] = append([]Card(nil), d[i*size:(i+1)*size]...)
	}
	return hands, nil
}
