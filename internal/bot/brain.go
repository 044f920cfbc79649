package bot

import (
	botinternal "bigtwo/internal/bot/internal"
	"bigtwo/internal/domain"
)

// ChooseMove selects a hand for the acting player, or a pass.
//
// While no opponent is down to the pressure threshold, the cards of the
// strongest pair and the strongest combo of each category are held back and
// the weakest legal hand is played. Under pressure nothing is held back and
// the strongest legal hand is played. Openings try combos, then doubles, then
// singles.
func ChooseMove(turn Turn, tuning Tuning) Move {
	if len(turn.Hand) == 0 {
		return Move{Pass: true}
	}

	pressure := botinternal.DetectPressure(turn.CardsLeft, turn.Seat, tuning.PressureThreshold)

	var saved map[domain.Card]struct{}
	if !pressure {
		saved = botinternal.ProfileHand(turn.Hand, turn.Seat).SaveSet()
	}

	if turn.Top != nil {
		candidates := botinternal.Beating(candidatesOfKind(turn.Hand, turn.Seat, turn.Top.Kind()), turn.Top)
		return moveFor(botinternal.Choose(candidates, saved, pressure))
	}

	for _, kind := range []domain.Kind{domain.KindCombo, domain.KindDouble, domain.KindSingle} {
		if h := botinternal.Choose(candidatesOfKind(turn.Hand, turn.Seat, kind), saved, pressure); h != nil {
			return Move{Hand: h}
		}
	}
	return Move{Pass: true}
}

func moveFor(h domain.Hand) Move {
	if h == nil {
		return Move{Pass: true}
	}
	return Move{Hand: h}
}

// candidatesOfKind lists every hand of kind formable from cards.
func candidatesOfKind(cards []domain.Card, player int, kind domain.Kind) []domain.Hand {
	switch kind {
	case domain.KindSingle:
		out := make([]domain.Hand, len(cards))
		for i, c := range cards {
			out[i] = domain.NewSingle(c, player)
		}
		return out
	case domain.KindDouble:
		return botinternal.ClassifyAll(botinternal.Duplicates(cards, 2), player)
	case domain.KindCombo:
		combos, err := botinternal.Combos(cards)
		if err != nil {
			return nil
		}
		var out []domain.Hand
		for _, cat := range botinternal.Categories {
			out = append(out, botinternal.ClassifyAll(combos[cat], player)...)
		}
		return out
	}
	return nil
}
