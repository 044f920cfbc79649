package domain

import (
	"errors"
	"testing"
)

func TestPileSingles(t *testing.T) {
	p := NewPile()
	if p.Kind() != KindNone || p.Top() != nil {
		t.Fatalf("new pile should be empty and unlocked")
	}

	if _, err := p.Add(mustCards(t, "5D"), 0); err != nil {
		t.Fatalf("first single: %v", err)
	}
	if _, err := p.Add(mustCards(t, "5S"), 1); err != nil {
		t.Fatalf("higher suit should be accepted: %v", err)
	}
	if _, err := p.Add(mustCards(t, "5H"), 2); !errors.Is(err, ErrTooWeak) {
		t.Fatalf("weaker single err = %v, want ErrTooWeak", err)
	}
	if _, err := p.Add(mustCards(t, "7D 7C"), 2); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("double on singles err = %v, want ErrKindMismatch", err)
	}
	if p.Len() != 2 || p.Kind() != KindSingle {
		t.Fatalf("rejections must not change the pile: len=%d kind=%s", p.Len(), p.Kind())
	}
	if owner, ok := p.Owner(); !ok || owner != 1 {
		t.Fatalf("owner = %d,%v want 1,true", owner, ok)
	}
}

func TestPileDoublesAndClear(t *testing.T) {
	p := NewPile()
	if _, err := p.Add(mustCards(t, "8D 8C"), 0); err != nil {
		t.Fatalf("double: %v", err)
	}
	if _, err := p.Add(mustCards(t, "9D"), 1); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("single on doubles err = %v, want ErrKindMismatch", err)
	}
	if _, err := p.Add(mustCards(t, "8H 8S"), 1); err != nil {
		t.Fatalf("higher double: %v", err)
	}

	p.Clear()
	if p.Kind() != KindNone || p.Len() != 0 {
		t.Fatalf("clear should reset the pile")
	}
	if _, err := p.Add(mustCards(t, "3D"), 2); err != nil {
		t.Fatalf("any kind after clear: %v", err)
	}
	if p.Kind() != KindSingle {
		t.Fatalf("kind = %s, want Single", p.Kind())
	}
}

func TestPileCombosTrackSubtype(t *testing.T) {
	p := NewPile()
	if _, err := p.Add(mustCards(t, "3D 4C 5H 6S 7D"), 0); err != nil {
		t.Fatalf("straight: %v", err)
	}
	if p.Subtype() != Straight {
		t.Fatalf("subtype = %s, want Straight", p.Subtype())
	}
	if _, err := p.Add(mustCards(t, "3C 5C 8C JC KC"), 1); err != nil {
		t.Fatalf("flush over straight: %v", err)
	}
	if p.Subtype() != Flush {
		t.Fatalf("subtype = %s, want Flush", p.Subtype())
	}
	if _, err := p.Add(mustCards(t, "4D 5C 6H 7S 8D"), 2); !errors.Is(err, ErrTooWeak) {
		t.Fatalf("straight over flush err = %v, want ErrTooWeak", err)
	}
}

func TestPileOnAce(t *testing.T) {
	tests := []struct {
		name string
		next string
		err  error
	}{
		{"lower rank", "KS", ErrTooWeak},
		{"two of spades", "2S", nil},
		{"double", "5D 5C", ErrKindMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPile()
			if _, err := p.Add(mustCards(t, "AD"), 0); err != nil {
				t.Fatalf("ace: %v", err)
			}
			_, err := p.Add(mustCards(t, tt.next), 1)
			if tt.err == nil {
				if err != nil {
					t.Fatalf("%s on ace: %v", tt.next, err)
				}
				if p.Len() != 2 {
					t.Fatalf("len = %d, want 2", p.Len())
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("%s on ace: err = %v, want %v", tt.next, err, tt.err)
			}
			if p.Len() != 1 {
				t.Fatalf("rejected play changed the pile: len = %d", p.Len())
			}
		})
	}
}

func TestPileRejectsInvalidHands(t *testing.T) {
	p := NewPile()
	if _, err := p.Add(mustCards(t, "3D 4D 5D"), 0); !errors.Is(err, ErrBadLength) {
		t.Fatalf("err = %v, want ErrBadLength", err)
	}
	if !p.Empty() || p.Kind() != KindNone {
		t.Fatalf("invalid hand must not lock the pile")
	}
}

func TestPileStrictlyIncreasing(t *testing.T) {
	p := NewPile()
	plays := []string{"3D", "3S", "9C", "KD", "2D", "2S"}
	for i, s := range plays {
		if _, err := p.Add(mustCards(t, s), i%4); err != nil {
			t.Fatalf("play %s: %v", s, err)
		}
	}
	hands := p.Hands()
	for i := 1; i < len(hands); i++ {
		if hands[i].Strength() <= hands[i-1].Strength() {
			t.Fatalf("hand %d not stronger than hand %d", i, i-1)
		}
	}
}
