package internal

import (
	"testing"

	"bigtwo/internal/domain"
)

func TestProfileHand(t *testing.T) {
	hand := cards(t, "3D 3C 5H 5S 9D 3H 4C 6S 7D 10C")

	profile := ProfileHand(hand, 1)

	if profile.StrongestPair == nil {
		t.Fatalf("expected a strongest pair")
	}
	if got := domain.FormatCards(profile.StrongestPair.Cards()); got != domain.FormatCards(cards(t, "5H 5S")) {
		t.Fatalf("StrongestPair = %s, want [♥5 ♠5]", got)
	}
	straight, ok := profile.StrongestCombo[CategoryStraight]
	if !ok {
		t.Fatalf("expected a straight")
	}
	// Every candidate runs from Three to Seven.
	if straight.Cards()[4] != domain.NewCard(domain.Seven, domain.Diamond) {
		t.Fatalf("straight = %s", straight)
	}
	if _, ok := profile.StrongestCombo[CategoryFullHouse]; !ok {
		t.Fatalf("expected a full house")
	}
	if _, ok := profile.StrongestCombo[CategoryBomb]; ok {
		t.Fatalf("unexpected bomb")
	}

	saved := profile.SaveSet()
	for _, c := range cards(t, "5H 5S") {
		if _, ok := saved[c]; !ok {
			t.Fatalf("%s should be saved", c)
		}
	}
	if _, ok := saved[domain.NewCard(domain.Ten, domain.Club)]; ok {
		t.Fatalf("10C belongs to no saved grouping")
	}
}

func TestProfileHandEmpty(t *testing.T) {
	profile := ProfileHand(cards(t, "3D 8C KH"), 0)
	if profile.StrongestPair != nil || len(profile.StrongestCombo) != 0 {
		t.Fatalf("expected empty profile, got %+v", profile)
	}
	if len(profile.SaveSet()) != 0 {
		t.Fatalf("expected empty save set")
	}
}

func TestChoose(t *testing.T) {
	hands := ClassifyAll([][]domain.Card{
		cards(t, "4D"), cards(t, "9C"), cards(t, "KH"), cards(t, "2S"),
	}, 0)
	saved := map[domain.Card]struct{}{domain.NewCard(domain.Four, domain.Diamond): {}}

	tests := []struct {
		name      string
		saved     map[domain.Card]struct{}
		strongest bool
		want      string
	}{
		{"weakest", nil, false, "4D"},
		{"weakest skips saved", saved, false, "9C"},
		{"strongest", saved, true, "2S"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Choose(hands, tt.saved, tt.strongest)
			if got.Cards()[0] != cards(t, tt.want)[0] {
				t.Fatalf("Choose = %s, want %s", got, tt.want)
			}
		})
	}

	all := map[domain.Card]struct{}{}
	for _, h := range hands {
		all[h.Cards()[0]] = struct{}{}
	}
	if got := Choose(hands, all, false); got.Cards()[0] != domain.NewCard(domain.Four, domain.Diamond) {
		t.Fatalf("fallback should consider saved cards, got %s", got)
	}
	if Choose(nil, nil, false) != nil {
		t.Fatalf("no candidates should give nil")
	}
}

func TestBeating(t *testing.T) {
	top := domain.NewSingle(domain.NewCard(domain.Nine, domain.Heart), 2)
	hands := ClassifyAll([][]domain.Card{
		cards(t, "9D"), cards(t, "9S"), cards(t, "KH"), cards(t, "3D 3C"),
	}, 0)
	got := Beating(hands, top)
	if len(got) != 2 {
		t.Fatalf("Beating = %d hands, want 2", len(got))
	}
}
