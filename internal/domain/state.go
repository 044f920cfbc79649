package domain

// Phase represents the lifecycle stage of a game.
type Phase string

const (
	// PhasePlaying is the active game state where cards are played.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after a player has emptied their hand.
	PhaseEnded Phase = "ended"
)

// NoWinner marks a game that is still in progress.
const NoWinner = -1

// Player holds state for a participant. Seat doubles as the player id
// recorded on every hand they play.
type Player struct {
	Seat  int
	Name  string
	Human bool
	Hand  []Card
}

// Game holds authoritative state for one Big Two deal.
type Game struct {
	ID          string
	Phase       Phase
	Players     []*Player // indexed by seat
	Pile        *Pile
	CurrentSeat int
	Turn        int
	Winner      int
}

// CardsLeft returns every seat's remaining card count, indexed by seat.
func (g *Game) CardsLeft() []int {
	out := make([]int, len(g.Players))
	for i, p := range g.Players {
		out[i] = len(p.Hand)
	}
	return out
}

// Current returns the player whose turn it is.
func (g *Game) Current() *Player {
	return g.Players[g.CurrentSeat]
}

// Leading reports whether the current player opens a fresh trick.
func (g *Game) Leading() bool {
	return g.Pile.Empty()
}
