package domain

import (
	"errors"
	"testing"
)

func TestCardValueInjective(t *testing.T) {
	seen := make(map[float32]Card)
	for _, c := range NewDeck() {
		v := c.Value()
		if v < 1.09 || v > 13.41 {
			t.Fatalf("%s value %v out of range", c, v)
		}
		if prev, ok := seen[v]; ok {
			t.Fatalf("%s and %s share value %v", prev, c, v)
		}
		seen[v] = c
	}
	if len(seen) != DeckSize {
		t.Fatalf("distinct values = %d, want %d", len(seen), DeckSize)
	}
}

func TestCardOrdering(t *testing.T) {
	tests := []struct {
		name      string
		low, high Card
	}{
		{"rank dominates suit", NewCard(Three, Spade), NewCard(Four, Diamond)},
		{"suit breaks ties", NewCard(King, Club), NewCard(King, Heart)},
		{"two is highest", NewCard(Ace, Spade), NewCard(Two, Diamond)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !(tt.low.Value() < tt.high.Value()) {
				t.Errorf("value(%s)=%v not below value(%s)=%v", tt.low, tt.low.Value(), tt.high, tt.high.Value())
			}
			if !tt.low.Less(tt.high) || tt.high.Less(tt.low) {
				t.Errorf("Less disagrees with Value for %s, %s", tt.low, tt.high)
			}
		})
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"3D", NewCard(Three, Diamond)},
		{"10s", NewCard(Ten, Spade)},
		{"TH", NewCard(Ten, Heart)},
		{"Q♥", NewCard(Queen, Heart)},
		{"ac", NewCard(Ace, Club)},
		{"2S", NewCard(Two, Spade)},
	}
	for _, tt := range tests {
		got, err := ParseCard(tt.in)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCard(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "1S", "3X", "S"} {
		if _, err := ParseCard(bad); !errors.Is(err, ErrBadCard) {
			t.Errorf("ParseCard(%q) err = %v, want ErrBadCard", bad, err)
		}
	}
}

func TestCardString(t *testing.T) {
	if got := NewCard(Four, Heart).String(); got != "♥4" {
		t.Fatalf("String = %q, want ♥4", got)
	}
	if got := NewCard(Ten, Spade).String(); got != "♠10" {
		t.Fatalf("String = %q, want ♠10", got)
	}
}

func TestSortCards(t *testing.T) {
	cards := mustCards(t, "2S 3D AH 3S 10C")
	SortCards(cards)
	want := mustCards(t, "3D 3S 10C AH 2S")
	for i := range want {
		if cards[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", FormatCards(cards), FormatCards(want))
		}
	}
}

func TestRemoveCards(t *testing.T) {
	hand := mustCards(t, "3D 4C 5H 6S")
	out := RemoveCards(hand, mustCards(t, "4C 6S"))
	if len(out) != 2 || out[0] != NewCard(Three, Diamond) || out[1] != NewCard(Five, Heart) {
		t.Fatalf("RemoveCards = %v", FormatCards(out))
	}
	if len(hand) != 4 {
		t.Fatalf("input hand was modified")
	}
	if !ContainsAll(hand, mustCards(t, "5H 3D")) {
		t.Fatalf("ContainsAll should find held cards")
	}
	if ContainsAll(hand, mustCards(t, "5H 5D")) {
		t.Fatalf("ContainsAll should reject missing cards")
	}
}
