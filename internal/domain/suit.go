package domain

import (
	"fmt"
	"strings"
)

// Suit breaks ties between cards of equal rank.
type Suit uint8

const (
	Diamond Suit = iota + 1
	Club
	Heart
	Spade
)

// Suits lists every suit in ascending order.
var Suits = []Suit{Diamond, Club, Heart, Spade}

var suitNames = [...]string{Diamond: "Diamond", Club: "Club", Heart: "Heart", Spade: "Spade"}
var suitSymbols = [...]string{Diamond: "♦", Club: "♣", Heart: "♥", Spade: "♠"}
var suitLetters = [...]string{Diamond: "D", Club: "C", Heart: "H", Spade: "S"}

// Weight returns the suit's ordering weight (1..4).
func (s Suit) Weight() int { return int(s) }

func (s Suit) Valid() bool { return s >= Diamond && s <= Spade }

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// Symbol returns the unicode pip for the suit.
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// ParseSuit accepts the suit name, its letter, or its pip.
func ParseSuit(v string) (Suit, error) {
	v = strings.TrimSpace(v)
	for _, s := range Suits {
		if strings.EqualFold(v, suitNames[s]) || strings.EqualFold(v, suitLetters[s]) || v == suitSymbols[s] {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: suit %q", ErrBadCard, v)
}
