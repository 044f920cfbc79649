package terminal

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"bigtwo/internal/domain"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadIndex       = errors.New("index not in hand")
)

// CommandKind is a player's keyboard action.
type CommandKind int

const (
	CmdPlay CommandKind = iota
	CmdQuit
	CmdPass
	CmdHelp
	CmdSort
	CmdRestart
	CmdComputer
)

// Command is one parsed input line. Indices is set for CmdPlay only.
type Command struct {
	Kind    CommandKind
	Indices []int
}

const helpText = `Commands:
  0,3,4  play the cards at these indices
  p      pass
  c      let the computer choose
  s      sort your hand
  r      restart with a new deal
  h      show this help
  q      quit`

var letterCommands = map[string]CommandKind{
	"q": CmdQuit,
	"p": CmdPass,
	"h": CmdHelp,
	"s": CmdSort,
	"r": CmdRestart,
	"c": CmdComputer,
}

// ParseCommand reads a single input line.
func ParseCommand(line string) (Command, error) {
	line = strings.ToLower(strings.TrimSpace(line))
	if kind, ok := letterCommands[line]; ok {
		return Command{Kind: kind}, nil
	}
	idx, err := ParseIndices(line)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdPlay, Indices: idx}, nil
}

// ParseIndices reads comma separated hand positions such as "0, 3,4". The
// result is sorted and free of repeats.
func ParseIndices(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q is not an index", ErrUnknownCommand, strings.TrimSpace(part))
		}
		out = append(out, n)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// SelectCards picks the cards at the given positions of hand.
func SelectCards(hand []domain.Card, indices []int) ([]domain.Card, error) {
	out := make([]domain.Card, 0, len(indices))
	for _, i := range indices {
		if i >= len(hand) {
			return nil, fmt.Errorf("%w: %d", ErrBadIndex, i)
		}
		out = append(out, hand[i])
	}
	return out, nil
}
