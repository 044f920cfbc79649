package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Card is a single playing card. Every pair of valid Rank and Suit is a card.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard builds a card from its rank and suit.
func NewCard(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

// Valid reports whether both rank and suit are in range.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// Value orders cards: rank weight dominates and the suit weight breaks ties.
// The result is distinct for each of the 52 cards and lies in [1.1, 13.4].
func (c Card) Value() float32 {
	return float32(c.Rank.Weight()) + float32(c.Suit.Weight())/10
}

// Less reports whether c is worth less than o.
func (c Card) Less(o Card) bool {
	if c.Rank != o.Rank {
		return c.Rank < o.Rank
	}
	return c.Suit < o.Suit
}

// String renders the card as its suit pip and rank face, e.g. "♥4".
func (c Card) String() string {
	return c.Suit.Symbol() + c.Rank.Symbol()
}

// ParseCard reads the compact notation used by the terminal and the RPCs:
// rank face followed by suit letter or pip ("AS", "10d", "Q♥").
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("%w: empty card", ErrBadCard)
	}
	runes := []rune(s)
	suit, err := ParseSuit(string(runes[len(runes)-1]))
	if err != nil {
		return Card{}, err
	}
	rank, err := ParseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, err
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a comma or space separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func compareCards(a, b Card) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}

// SortCards orders cards by ascending value in place.
func SortCards(cards []Card) {
	slices.SortFunc(cards, compareCards)
}

// FormatCards joins the display form of each card.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
