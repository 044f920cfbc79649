package bot

// StandardBot holds back its strongest groupings until an opponent is close
// to going out.
type StandardBot struct {
	Tuning Tuning
}

func (b *StandardBot) CalculateMove(turn Turn) (Move, error) {
	return ChooseMove(turn, b.Tuning), nil
}
