package domain

import (
	"fmt"
	"strings"
)

// Rank is a card rank. The numeric value is the rank's weight, so Three is
// the lowest rank and Two the highest.
type Rank uint8

const (
	Three Rank = iota + 1
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
)

// Ranks lists every rank in ascending order.
var Ranks = []Rank{Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace, Two}

var rankNames = [...]string{
	Three: "Three", Four: "Four", Five: "Five", Six: "Six", Seven: "Seven",
	Eight: "Eight", Nine: "Nine", Ten: "Ten", Jack: "Jack", Queen: "Queen",
	King: "King", Ace: "Ace", Two: "Two",
}

var rankSymbols = [...]string{
	Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8", Nine: "9",
	Ten: "10", Jack: "J", Queen: "Q", King: "K", Ace: "A", Two: "2",
}

// Weight returns the rank's ordering weight (1..13).
func (r Rank) Weight() int { return int(r) }

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool { return r >= Three && r <= Two }

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// Symbol is the short face used when rendering a card.
func (r Rank) Symbol() string {
	if !r.Valid() {
		return "?"
	}
	return rankSymbols[r]
}

// ParseRank accepts either the rank name ("Queen") or its symbol ("Q", "10").
func ParseRank(s string) (Rank, error) {
	s = strings.TrimSpace(s)
	for _, r := range Ranks {
		if strings.EqualFold(s, rankNames[r]) || strings.EqualFold(s, rankSymbols[r]) {
			return r, nil
		}
	}
	if strings.EqualFold(s, "T") {
		return Ten, nil
	}
	return 0, fmt.Errorf("%w: rank %q", ErrBadCard, s)
}
