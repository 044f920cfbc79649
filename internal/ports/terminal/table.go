// Package terminal runs Big Two in a text terminal, hotseat or against bots.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/pterm/pterm"

	"bigtwo/internal/app"
	"bigtwo/internal/config"
	"bigtwo/internal/domain"
)

// Table drives one terminal session over an app.Service.
type Table struct {
	svc    *app.Service
	cfg    config.GameConfig
	logger runtime.Logger
	in     *bufio.Scanner
	out    io.Writer
	game   *domain.Game
}

// NewTable builds a session reading commands from in and rendering to out.
func NewTable(svc *app.Service, cfg config.GameConfig, logger runtime.Logger, in io.Reader, out io.Writer) *Table {
	return &Table{
		svc:    svc,
		cfg:    cfg,
		logger: logger,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Game returns the game in progress, or nil before Run.
func (t *Table) Game() *domain.Game { return t.game }

// Run deals a game and plays it until someone wins, the player quits, input
// ends or ctx is cancelled.
func (t *Table) Run(ctx context.Context) error {
	if err := t.deal(); err != nil {
		return err
	}
	t.print(pterm.Info.Sprintln("Type h for help."))

	for t.game.Phase == domain.PhasePlaying {
		if err := ctx.Err(); err != nil {
			return err
		}
		if t.svc.IsBot(t.game, t.game.CurrentSeat) {
			events, err := t.svc.PlayComputer(t.game)
			if err != nil {
				return fmt.Errorf("bot turn: %w", err)
			}
			t.renderEvents(events)
			continue
		}

		t.renderState()
		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			t.print(pterm.Info.Sprintln("Input closed."))
			return nil
		}
		quit, err := t.handle(t.in.Text())
		if err != nil {
			t.print(pterm.Error.Sprintln(err.Error()))
		}
		if quit {
			t.print(pterm.Info.Sprintln("See you later!"))
			return nil
		}
	}
	return t.finish()
}

func (t *Table) deal() error {
	if t.game != nil {
		t.svc.Forget(t.game.ID)
	}
	game, events, err := t.svc.StartGame(app.SeatsFromConfig(t.cfg))
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	t.game = game
	t.renderEvents(events)
	return nil
}

// handle applies one input line for the current seat.
func (t *Table) handle(line string) (quit bool, err error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return false, err
	}
	seat := t.game.CurrentSeat

	var events []app.Event
	switch cmd.Kind {
	case CmdQuit:
		return true, nil
	case CmdHelp:
		t.print(helpText + "\n")
		return false, nil
	case CmdSort:
		domain.SortCards(t.game.Players[seat].Hand)
		return false, nil
	case CmdRestart:
		t.print(pterm.Warning.Sprintln("Restarting with a new deal."))
		return false, t.deal()
	case CmdComputer:
		events, err = t.svc.PlayComputer(t.game)
	case CmdPass:
		events, err = t.svc.PassTurn(t.game, seat)
	case CmdPlay:
		var cards []domain.Card
		if cards, err = SelectCards(t.game.Players[seat].Hand, cmd.Indices); err != nil {
			return false, err
		}
		events, err = t.svc.PlayCards(t.game, seat, cards)
	}
	if err != nil {
		return false, err
	}
	t.renderEvents(events)
	return false, nil
}

func (t *Table) finish() error {
	if t.cfg.ReplayDir == "" {
		return nil
	}
	replay, err := t.svc.Replay(t.game.ID)
	if err != nil {
		return err
	}
	path, err := replay.Save(t.cfg.ReplayDir)
	if err != nil {
		return err
	}
	t.logger.WithField("game_id", t.game.ID).Info("Replay saved to %s", path)
	return nil
}

func (t *Table) renderState() {
	g := t.game
	pl := g.Current()
	t.print(pterm.DefaultSection.Sprintfln("Turn %d: %s", g.Turn+1, pl.Name))

	if top := g.Pile.Top(); top != nil {
		t.print(fmt.Sprintf("Current hand: %s by %s\n", t.label(top), g.Players[top.Player()].Name))
	} else {
		t.print("Current hand: none\n")
	}
	mode := g.Pile.Kind().String()
	if g.Pile.Kind() == domain.KindCombo {
		mode += " (" + g.Pile.Subtype().String() + ")"
	}
	t.print("Current mode: " + mode + "\n")

	left := pterm.TableData{{"Player", "Cards"}}
	for _, p := range g.Players {
		left = append(left, []string{p.Name, strconv.Itoa(len(p.Hand))})
	}
	t.printTable(left)

	hand := pterm.TableData{{"#", "Card"}}
	for i, c := range pl.Hand {
		hand = append(hand, []string{strconv.Itoa(i), c.String()})
	}
	t.printTable(hand)
}

func (t *Table) renderEvents(events []app.Event) {
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case app.GameStartedPayload:
			t.print(pterm.Info.Sprintfln("New game %s with %d players", p.GameID, len(p.Players)))
		case app.CardPlayedPayload:
			t.print(fmt.Sprintf("%s plays %s\n", t.name(p.Seat), t.label(p.Hand)))
		case app.TurnPassedPayload:
			t.print(fmt.Sprintf("%s passes\n", t.name(p.Seat)))
		case app.TrickClearedPayload:
			t.print(pterm.Info.Sprintfln("%s wins the trick", t.name(p.Seat)))
		case app.GameEndedPayload:
			t.print(pterm.Success.Sprintfln("%s wins after %d turns!", t.name(p.Winner), p.Turns))
		}
	}
}

// label shows a hand with its poker name when it has one.
func (t *Table) label(h domain.Hand) string {
	s := h.String()
	desc, err := Describe(h.Cards())
	if err != nil {
		t.logger.Warn("Describe %s: %v", s, err)
		return s
	}
	if desc != "" {
		s += " (" + desc + ")"
	}
	return s
}

func (t *Table) name(seat int) string {
	if seat < 0 || seat >= len(t.game.Players) {
		return "Player " + strconv.Itoa(seat+1)
	}
	return t.game.Players[seat].Name
}

func (t *Table) printTable(data pterm.TableData) {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		t.logger.Warn("Render table: %v", err)
		return
	}
	t.print(s + "\n")
}

func (t *Table) print(s string) {
	if _, err := io.WriteString(t.out, s); err != nil && !errors.Is(err, io.ErrClosedPipe) {
		t.logger.Warn("Write output: %v", err)
	}
}
