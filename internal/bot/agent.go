package bot

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Seat     int
	Strategy Brain
}

// NewAgent seats a bot of the given level.
func NewAgent(seat int, identity BotIdentity, tuning Tuning) (*Agent, error) {
	level, err := ParseBotLevel(identity.Difficulty)
	if err != nil {
		return nil, err
	}
	brain, err := NewBrain(level, tuning)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: identity.ID, Name: identity.DisplayName, Seat: seat, Strategy: brain}, nil
}

// Play asks the agent to calculate its move. Errors fall back to a pass.
func (a *Agent) Play(turn Turn) (Move, error) {
	if turn.Seat != a.Seat {
		return Move{Pass: true}, nil
	}
	move, err := a.Strategy.CalculateMove(turn)
	if err != nil {
		return Move{Pass: true}, err
	}
	return move, nil
}
