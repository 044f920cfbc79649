package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"bigtwo/internal/bot"
	"bigtwo/internal/config"
	"bigtwo/internal/domain"
)

var (
	ErrNotPlaying     = errors.New("game not in playing phase")
	ErrTooFewPlayers  = errors.New("not enough players to start")
	ErrUnknownSeat    = errors.New("seat not found")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrCardsNotHeld   = errors.New("cards not in hand")
	ErrCannotPassLead = errors.New("cannot pass when leading a trick")
	ErrUnknownGame    = errors.New("game not found")
)

// Options configures bots seated by the service.
type Options struct {
	Tuning   bot.Tuning
	BotLevel bot.BotLevel
}

// OptionsFromConfig derives service options from the game config.
func OptionsFromConfig(c config.GameConfig) (Options, error) {
	level, err := bot.ParseBotLevel(c.BotLevel)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	return Options{
		Tuning:   bot.Tuning{PressureThreshold: c.EndgameThreshold},
		BotLevel: level,
	}, nil
}

// SeatSpec describes who sits in a seat.
type SeatSpec struct {
	Name  string
	Human bool
}

// SeatsFromConfig lays out the table: every seat human in hotseat mode,
// otherwise one human seat and bots drawn from the identity pool.
func SeatsFromConfig(c config.GameConfig) []SeatSpec {
	seats := make([]SeatSpec, c.Players)
	for i := range seats {
		if c.Hotseat || i == c.HumanSeat {
			seats[i] = SeatSpec{Name: fmt.Sprintf("Player %d", i+1), Human: true}
			continue
		}
		seats[i] = SeatSpec{Name: bot.GetBotIdentity(i).DisplayName}
	}
	return seats
}

// Service contains Big Two use-cases operating on domain state.
type Service struct {
	rng     *rand.Rand
	logger  runtime.Logger
	opts    Options
	assist  bot.Brain
	agents  map[string]map[int]*bot.Agent
	replays map[string]*Replay
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, logger runtime.Logger, opts Options) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.BotLevel == 0 {
		opts.BotLevel = bot.BotLevelStandard
	}
	return &Service{
		rng:     rng,
		logger:  logger,
		opts:    opts,
		assist:  &bot.StandardBot{Tuning: opts.Tuning},
		agents:  make(map[string]map[int]*bot.Agent),
		replays: make(map[string]*Replay),
	}
}

// StartGame shuffles, deals the deck evenly across seats and opens at FirstSeat.
func (s *Service) StartGame(seats []SeatSpec) (*domain.Game, []Event, error) {
	if len(seats) < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}

	deck := domain.NewDeck()
	deck.Shuffle(s.rng)
	hands, err := deck.Divide(len(seats))
	if err != nil {
		return nil, nil, fmt.Errorf("deal: %w", err)
	}

	game := &domain.Game{
		ID:          uuid.NewString(),
		Phase:       domain.PhasePlaying,
		Players:     make([]*domain.Player, len(seats)),
		Pile:        domain.NewPile(),
		CurrentSeat: FirstSeat,
		Winner:      domain.NoWinner,
	}
	agents := make(map[int]*bot.Agent)
	names := make([]string, len(seats))
	events := make([]Event, 0, len(seats)+1)

	for i, seat := range seats {
		game.Players[i] = &domain.Player{Seat: i, Name: seat.Name, Human: seat.Human, Hand: hands[i]}
		names[i] = seat.Name
		if !seat.Human {
			identity := bot.GetBotIdentity(i)
			identity.DisplayName = seat.Name
			if identity.Difficulty == "" {
				identity.Difficulty = s.opts.BotLevel.String()
			}
			agent, err := bot.NewAgent(i, identity, s.opts.Tuning)
			if err != nil {
				return nil, nil, fmt.Errorf("seat %d: %w", i, err)
			}
			agents[i] = agent
		}
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: i, Hand: append([]domain.Card(nil), hands[i]...)},
			Recipients: []int{i},
		})
	}

	s.agents[game.ID] = agents
	s.replays[game.ID] = newReplay(game)

	events = append(events, Event{
		Kind:    EventGameStarted,
		Payload: GameStartedPayload{GameID: game.ID, Players: names, FirstSeat: game.CurrentSeat},
	})
	s.gameLogger(game).Info("Game started with %d players, %d cards each", len(seats), len(hands[0]))
	return game, events, nil
}

// PlayCards validates and applies a play by seat.
func (s *Service) PlayCards(game *domain.Game, seat int, cards []domain.Card) ([]Event, error) {
	pl, err := s.actor(game, seat)
	if err != nil {
		return nil, err
	}
	replay, err := s.Replay(game.ID)
	if err != nil {
		return nil, err
	}
	if !domain.ContainsAll(pl.Hand, cards) {
		return nil, ErrCardsNotHeld
	}

	hand, err := game.Pile.Add(cards, seat)
	if err != nil {
		return nil, err
	}
	pl.Hand = domain.RemoveCards(pl.Hand, cards)
	replay.record(game.Turn, seat, hand.Cards())
	s.gameLogger(game).WithField("seat", seat).Debug("Played %s", hand)

	if len(pl.Hand) == 0 {
		game.Phase = domain.PhaseEnded
		game.Winner = seat
		replay.Winner = seat
		s.gameLogger(game).Info("Seat %d wins after %d turns", seat, game.Turn+1)
		return []Event{
			{Kind: EventCardPlayed, Payload: CardPlayedPayload{Seat: seat, Hand: hand, NextSeat: seat}},
			{Kind: EventGameEnded, Payload: GameEndedPayload{Winner: seat, Turns: game.Turn + 1}},
		}, nil
	}

	cleared := s.advance(game)
	played := Event{Kind: EventCardPlayed, Payload: CardPlayedPayload{Seat: seat, Hand: hand, NextSeat: game.CurrentSeat}}
	return append([]Event{played}, cleared...), nil
}

// PassTurn records a pass by seat. Leading seats must play.
func (s *Service) PassTurn(game *domain.Game, seat int) ([]Event, error) {
	if _, err := s.actor(game, seat); err != nil {
		return nil, err
	}
	replay, err := s.Replay(game.ID)
	if err != nil {
		return nil, err
	}
	if game.Leading() {
		return nil, ErrCannotPassLead
	}
	replay.record(game.Turn, seat, nil)

	cleared := s.advance(game)
	passed := Event{Kind: EventTurnPassed, Payload: TurnPassedPayload{Seat: seat, NextSeat: game.CurrentSeat}}
	return append([]Event{passed}, cleared...), nil
}

// PlayComputer lets a bot decide for the current seat. Human seats are
// advised by a standard bot.
func (s *Service) PlayComputer(game *domain.Game) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	seat := game.CurrentSeat
	agent, ok := s.agents[game.ID][seat]
	if !ok {
		agent = &bot.Agent{ID: "assist", Name: "assist", Seat: seat, Strategy: s.assist}
	}

	move, err := agent.Play(s.TurnFor(game))
	if err != nil {
		s.gameLogger(game).WithField("seat", seat).Warn("Bot %s failed, passing: %v", agent.Name, err)
		move = bot.Move{Pass: true}
	}
	if move.Pass {
		return s.PassTurn(game, seat)
	}
	return s.PlayCards(game, seat, move.Cards())
}

// TurnFor builds the bot view of the current seat.
func (s *Service) TurnFor(game *domain.Game) bot.Turn {
	pl := game.Current()
	return bot.Turn{
		Seat:      pl.Seat,
		Hand:      append([]domain.Card(nil), pl.Hand...),
		Top:       game.Pile.Top(),
		CardsLeft: game.CardsLeft(),
	}
}

// IsBot reports whether seat is driven by an agent.
func (s *Service) IsBot(game *domain.Game, seat int) bool {
	_, ok := s.agents[game.ID][seat]
	return ok
}

// Replay returns the record of a game started by this service.
func (s *Service) Replay(gameID string) (*Replay, error) {
	r, ok := s.replays[gameID]
	if !ok {
		return nil, ErrUnknownGame
	}
	return r, nil
}

// Forget drops bookkeeping for a finished or abandoned game.
func (s *Service) Forget(gameID string) {
	delete(s.agents, gameID)
	delete(s.replays, gameID)
}

func (s *Service) actor(game *domain.Game, seat int) (*domain.Player, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	if seat < 0 || seat >= len(game.Players) {
		return nil, ErrUnknownSeat
	}
	if seat != game.CurrentSeat {
		return nil, ErrNotYourTurn
	}
	return game.Players[seat], nil
}

// advance moves to the next seat. When play returns to the owner of the top
// hand, everyone else passed and the trick is cleared.
func (s *Service) advance(game *domain.Game) []Event {
	game.Turn++
	game.CurrentSeat = (game.CurrentSeat + 1) % len(game.Players)

	owner, ok := game.Pile.Owner()
	if !ok || owner != game.CurrentSeat {
		return nil
	}
	game.Pile.Clear()
	s.gameLogger(game).Debug("Trick won by seat %d", owner)
	return []Event{{Kind: EventTrickCleared, Payload: TrickClearedPayload{Seat: owner}}}
}

func (s *Service) gameLogger(game *domain.Game) runtime.Logger {
	return s.logger.WithField("game_id", game.ID)
}
