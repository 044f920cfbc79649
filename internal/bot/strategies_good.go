package bot

import (
	botinternal "bigtwo/internal/bot/internal"
	"bigtwo/internal/domain"
)

// GoodBot always plays the weakest legal hand and leads with its lowest card.
// It never holds cards back and ignores opponents' card counts.
type GoodBot struct{}

func (b *GoodBot) CalculateMove(turn Turn) (Move, error) {
	if len(turn.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	if turn.Top == nil {
		singles := candidatesOfKind(turn.Hand, turn.Seat, domain.KindSingle)
		return moveFor(botinternal.Choose(singles, nil, false)), nil
	}

	candidates := botinternal.Beating(candidatesOfKind(turn.Hand, turn.Seat, turn.Top.Kind()), turn.Top)
	return moveFor(botinternal.Choose(candidates, nil, false)), nil
}
