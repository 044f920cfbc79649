package bot

import (
	"math/rand"
	"testing"

	"bigtwo/internal/domain"
)

// playOut runs a full deal between brains on a real pile and fails on any
// illegal move.
func playOut(t *testing.T, seed int64, brains []Brain) int {
	t.Helper()
	deck := domain.NewDeck()
	deck.Shuffle(rand.New(rand.NewSource(seed)))
	hands, err := deck.Divide(len(brains))
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}

	pile := domain.NewPile()
	seat := 0
	for turn := 0; turn < 2000; turn++ {
		if owner, ok := pile.Owner(); ok && owner == seat {
			pile.Clear()
		}
		left := make([]int, len(hands))
		for i, h := range hands {
			left[i] = len(h)
		}

		move, err := brains[seat].CalculateMove(Turn{Seat: seat, Hand: hands[seat], Top: pile.Top(), CardsLeft: left})
		if err != nil {
			t.Fatalf("seat %d: %v", seat, err)
		}
		if move.Pass {
			if pile.Empty() {
				t.Fatalf("seat %d passed on an empty pile holding %v", seat, domain.FormatCards(hands[seat]))
			}
		} else {
			if !domain.ContainsAll(hands[seat], move.Cards()) {
				t.Fatalf("seat %d played cards it does not hold: %s", seat, move.Hand)
			}
			if _, err := pile.Add(move.Cards(), seat); err != nil {
				t.Fatalf("seat %d played %s on %v: %v", seat, move.Hand, pile.Top(), err)
			}
			hands[seat] = domain.RemoveCards(hands[seat], move.Cards())
			if len(hands[seat]) == 0 {
				return seat
			}
		}
		seat = (seat + 1) % len(hands)
	}
	t.Fatalf("game did not finish")
	return -1
}

func TestBotsPlayFullGames(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		brains := []Brain{
			&StandardBot{Tuning: DefaultTuning},
			&GoodBot{},
			&StandardBot{Tuning: DefaultTuning},
			&GoodBot{},
		}
		winner := playOut(t, seed, brains)
		if winner < 0 || winner > 3 {
			t.Fatalf("seed %d: winner = %d", seed, winner)
		}
	}
}

func TestTwoPlayerGame(t *testing.T) {
	brains := []Brain{&StandardBot{Tuning: DefaultTuning}, &StandardBot{Tuning: DefaultTuning}}
	if winner := playOut(t, 42, brains); winner != 0 && winner != 1 {
		t.Fatalf("winner = %d", winner)
	}
}
