package bot

import (
	"testing"

	"bigtwo/internal/domain"
)

func cards(t *testing.T, s string) []domain.Card {
	t.Helper()
	out, err := domain.ParseCards(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return out
}

func hand(t *testing.T, s string, player int) domain.Hand {
	t.Helper()
	h, err := domain.Classify(cards(t, s), player)
	if err != nil {
		t.Fatalf("classify %q: %v", s, err)
	}
	return h
}

func sameCards(a, b []domain.Card) bool {
	if len(a) != len(b) {
		return false
	}
	a = append([]domain.Card(nil), a...)
	b = append([]domain.Card(nil), b...)
	domain.SortCards(a)
	domain.SortCards(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestChooseMove(t *testing.T) {
	relaxed := []int{8, 10, 10, 10}
	tense := []int{8, 3, 10, 10}

	tests := []struct {
		name      string
		hand      string
		top       string // empty when opening
		cardsLeft []int
		want      string // empty for a pass
	}{
		{"opening prefers combos", "3D 4C 5H 6S 7D 9C 9D KH", "", relaxed, "3D 4C 5H 6S 7D"},
		{"opening falls back to doubles", "3D 3C 8H KS", "", relaxed, "3D 3C"},
		{"opening falls back to singles", "4D 9C KH", "", relaxed, "4D"},
		{"single keeps the strongest pair", "4D 5C 5S 9C KH", "3S", relaxed, "4D"},
		{"single under pressure plays high", "4D 5C 5S 9C KH", "3S", tense, "KH"},
		{"saved cards when nothing else beats", "4D 5C 5S", "4H", relaxed, "5C"},
		{"pass when nothing beats", "3D 4C", "2S", relaxed, ""},
		{"double keeps the strongest pair", "6D 6C 9H 9S KD", "5D 5S", relaxed, "6D 6C"},
		{"double under pressure", "6D 6C 9H 9S KD", "5D 5S", tense, "9H 9S"},
		{"combo keeps the strongest straight", "4D 5C 6H 7S 8D 9C 2S", "3D 4C 5H 6S 7D", relaxed, "4D 5C 6H 7S 8D"},
		{"combo must beat the top", "4D 5C 6H 7S 8D", "5D 6C 7H 8S 9D", relaxed, ""},
		{"kind is respected", "9D 9C", "3D", relaxed, "9D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turn := Turn{Seat: 0, Hand: cards(t, tt.hand), CardsLeft: tt.cardsLeft}
			if tt.top != "" {
				turn.Top = hand(t, tt.top, 1)
			}
			move := ChooseMove(turn, DefaultTuning)
			if tt.want == "" {
				if !move.Pass {
					t.Fatalf("expected pass, got %s", move.Hand)
				}
				return
			}
			if move.Pass {
				t.Fatalf("unexpected pass, want %s", tt.want)
			}
			if !sameCards(move.Cards(), cards(t, tt.want)) {
				t.Fatalf("move = %s, want %s", move.Hand, tt.want)
			}
			if move.Hand.Player() != 0 {
				t.Fatalf("hand player = %d, want 0", move.Hand.Player())
			}
			if turn.Top != nil && !domain.Beats(move.Hand, turn.Top) {
				t.Fatalf("%s does not beat %s", move.Hand, turn.Top)
			}
		})
	}
}

func TestGoodBot(t *testing.T) {
	bot := &GoodBot{}

	move, err := bot.CalculateMove(Turn{Hand: cards(t, "8H 3C 3D"), CardsLeft: []int{3, 1}})
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if !sameCards(move.Cards(), cards(t, "3D")) {
		t.Fatalf("lead = %s, want 3D", move.Hand)
	}

	move, _ = bot.CalculateMove(Turn{Hand: cards(t, "8H 3C 3D 9S 9D"), Top: hand(t, "4C 4D", 1), CardsLeft: []int{5, 1}})
	if !sameCards(move.Cards(), cards(t, "9D 9S")) {
		t.Fatalf("response = %v, want 9D 9S", move.Hand)
	}

	move, _ = bot.CalculateMove(Turn{Hand: cards(t, "3C"), Top: hand(t, "4C", 1)})
	if !move.Pass {
		t.Fatalf("expected pass")
	}
}

func TestNewBrain(t *testing.T) {
	for _, name := range []string{"", "standard", "Good", "lowest"} {
		level, err := ParseBotLevel(name)
		if err != nil {
			t.Fatalf("ParseBotLevel(%q): %v", name, err)
		}
		if _, err := NewBrain(level, DefaultTuning); err != nil {
			t.Fatalf("NewBrain(%s): %v", level, err)
		}
	}
	if _, err := ParseBotLevel("god"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if _, err := NewBrain(BotLevel(99), DefaultTuning); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestAgentPlaysOnlyItsSeat(t *testing.T) {
	agent, err := NewAgent(2, BotIdentity{ID: "b", DisplayName: "Bot", Difficulty: "good"}, DefaultTuning)
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	move, err := agent.Play(Turn{Seat: 1, Hand: cards(t, "3D")})
	if err != nil || !move.Pass {
		t.Fatalf("other seat should pass, got %+v %v", move, err)
	}
	move, _ = agent.Play(Turn{Seat: 2, Hand: cards(t, "3D")})
	if move.Pass {
		t.Fatalf("own seat should play")
	}
}

func TestParseIdentities(t *testing.T) {
	ids, err := ParseIdentities([]byte(`[{"id":"b1","display_name":"Mai","difficulty":"good"},{"id":"b2","display_name":"Lan"}]`))
	if err != nil {
		t.Fatalf("ParseIdentities: %v", err)
	}
	if len(ids) != 2 || ids[0].DisplayName != "Mai" {
		t.Fatalf("ids = %+v", ids)
	}
	if _, err := ParseIdentities([]byte(`[{"id":"b1","difficulty":"god"}]`)); err == nil {
		t.Fatalf("expected error for unknown difficulty")
	}
	if got := GetBotIdentity(3); got.ID != "bot-3" {
		t.Fatalf("fallback identity = %+v", got)
	}
}

func TestListCombos(t *testing.T) {
	catalog, err := ListCombos(cards(t, "3D 4C 5H 6S 7D 7C"), 0, false)
	if err != nil {
		t.Fatalf("ListCombos: %v", err)
	}
	if len(catalog["single"]) != 6 || len(catalog["double"]) != 1 || len(catalog["straight"]) != 2 {
		t.Fatalf("catalog sizes: single=%d double=%d straight=%d",
			len(catalog["single"]), len(catalog["double"]), len(catalog["straight"]))
	}

	if _, err := ListCombos(cards(t, "3D 9C"), 0, true); err != ErrNoCombo {
		t.Fatalf("err = %v, want ErrNoCombo", err)
	}
}
