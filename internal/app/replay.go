package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/encoding/protowire"

	"bigtwo/internal/domain"
)

// ErrReplayMismatch reports a replay that does not follow the rules.
var ErrReplayMismatch = errors.New("replay does not match the rules")

// ReplayEntry is one turn: the seat's play, or a pass when Cards is empty.
type ReplayEntry struct {
	Turn  int           `json:"turn"`
	Seat  int           `json:"seat"`
	Cards []domain.Card `json:"cards,omitempty"`
}

// Pass reports whether the entry records a pass.
func (e ReplayEntry) Pass() bool { return len(e.Cards) == 0 }

// Replay records a deal and every turn taken on it.
type Replay struct {
	GameID  string          `json:"game_id"`
	Players []string        `json:"players"`
	Hands   [][]domain.Card `json:"hands"`
	Entries []ReplayEntry   `json:"entries"`
	Winner  int             `json:"winner"`
}

func newReplay(game *domain.Game) *Replay {
	r := &Replay{GameID: game.ID, Winner: domain.NoWinner}
	for _, p := range game.Players {
		r.Players = append(r.Players, p.Name)
		r.Hands = append(r.Hands, append([]domain.Card(nil), p.Hand...))
	}
	return r
}

func (r *Replay) record(turn, seat int, cards []domain.Card) {
	r.Entries = append(r.Entries, ReplayEntry{Turn: turn, Seat: seat, Cards: cards})
}

// Verify re-runs the replay on a fresh pile and checks seat order, card
// ownership, pile legality and the recorded winner.
func (r *Replay) Verify() error {
	if len(r.Hands) < MinPlayersToStartGame {
		return fmt.Errorf("%w: %d hands dealt", ErrReplayMismatch, len(r.Hands))
	}
	if len(r.Players) != len(r.Hands) {
		return fmt.Errorf("%w: %d players for %d hands", ErrReplayMismatch, len(r.Players), len(r.Hands))
	}
	hands := make([][]domain.Card, len(r.Hands))
	for i, h := range r.Hands {
		hands[i] = append([]domain.Card(nil), h...)
	}
	pile := domain.NewPile()
	seat := FirstSeat

	for _, e := range r.Entries {
		if e.Seat != seat {
			return fmt.Errorf("%w: turn %d played by seat %d, want %d", ErrReplayMismatch, e.Turn, e.Seat, seat)
		}
		if e.Pass() {
			if pile.Empty() {
				return fmt.Errorf("%w: turn %d passes on an empty pile", ErrReplayMismatch, e.Turn)
			}
		} else {
			if !domain.ContainsAll(hands[seat], e.Cards) {
				return fmt.Errorf("%w: turn %d: %v", ErrReplayMismatch, e.Turn, ErrCardsNotHeld)
			}
			if _, err := pile.Add(e.Cards, seat); err != nil {
				return fmt.Errorf("%w: turn %d: %v", ErrReplayMismatch, e.Turn, err)
			}
			hands[seat] = domain.RemoveCards(hands[seat], e.Cards)
			if len(hands[seat]) == 0 {
				if r.Winner != seat {
					return fmt.Errorf("%w: seat %d emptied its hand but winner is %d", ErrReplayMismatch, seat, r.Winner)
				}
				return nil
			}
		}
		seat = (seat + 1) % len(hands)
		if owner, ok := pile.Owner(); ok && owner == seat {
			pile.Clear()
		}
	}
	if r.Winner != domain.NoWinner {
		return fmt.Errorf("%w: winner %d never emptied their hand", ErrReplayMismatch, r.Winner)
	}
	return nil
}

// Save writes the replay as <dir>/<game id>.json and returns the path.
func (r *Replay) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create replay dir: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal replay: %w", err)
	}
	path := filepath.Join(dir, r.GameID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write replay: %w", err)
	}
	return path, nil
}

// LoadReplay reads a replay written by Save.
func LoadReplay(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	var r Replay
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal replay: %w", err)
	}
	return &r, nil
}

// Binary layout, protobuf wire compatible:
//
//	message Seat   { string name = 1; repeated Card hand = 2; }
//	message Entry  { uint32 turn = 1; uint32 seat = 2; repeated Card cards = 3; }
//	message Replay { string game_id = 1; repeated Seat seats = 2;
//	                 repeated Entry entries = 3; sint32 winner = 4; }
const (
	replayIDField     protowire.Number = 1
	replaySeatField   protowire.Number = 2
	replayEntryField  protowire.Number = 3
	replayWinnerField protowire.Number = 4
	seatNameField     protowire.Number = 1
	seatHandField     protowire.Number = 2
	entryTurnField    protowire.Number = 1
	entrySeatField    protowire.Number = 2
	entryCardsField   protowire.Number = 3
)

// MarshalBinary encodes the replay in protobuf wire format.
func (r *Replay) MarshalBinary() ([]byte, error) {
	var b []byte
	b = protowire.AppendTag(b, replayIDField, protowire.BytesType)
	b = protowire.AppendString(b, r.GameID)
	for i, name := range r.Players {
		var seat []byte
		seat = protowire.AppendTag(seat, seatNameField, protowire.BytesType)
		seat = protowire.AppendString(seat, name)
		if i < len(r.Hands) {
			seat = domain.AppendCards(seat, seatHandField, r.Hands[i])
		}
		b = protowire.AppendTag(b, replaySeatField, protowire.BytesType)
		b = protowire.AppendBytes(b, seat)
	}
	for _, e := range r.Entries {
		var entry []byte
		entry = protowire.AppendTag(entry, entryTurnField, protowire.VarintType)
		entry = protowire.AppendVarint(entry, uint64(e.Turn))
		entry = protowire.AppendTag(entry, entrySeatField, protowire.VarintType)
		entry = protowire.AppendVarint(entry, uint64(e.Seat))
		entry = domain.AppendCards(entry, entryCardsField, e.Cards)
		b = protowire.AppendTag(b, replayEntryField, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	b = protowire.AppendTag(b, replayWinnerField, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(r.Winner)))
	return b, nil
}

// UnmarshalBinary decodes the wire format written by MarshalBinary.
func (r *Replay) UnmarshalBinary(b []byte) error {
	*r = Replay{Winner: domain.NoWinner}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		switch {
		case num == replayIDField && typ == protowire.BytesType:
			r.GameID = string(v)
		case num == replaySeatField && typ == protowire.BytesType:
			var hand []domain.Card
			var name string
			err := walkFields(v, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
				switch {
				case num == seatNameField && typ == protowire.BytesType:
					name = string(v)
				case num == seatHandField && typ == protowire.BytesType:
					c, err := domain.UnmarshalCard(v)
					if err != nil {
						return err
					}
					hand = append(hand, c)
				}
				return nil
			})
			if err != nil {
				return err
			}
			r.Players = append(r.Players, name)
			r.Hands = append(r.Hands, hand)
		case num == replayEntryField && typ == protowire.BytesType:
			var e ReplayEntry
			err := walkFields(v, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
				switch {
				case num == entryTurnField && typ == protowire.VarintType:
					e.Turn = int(x)
				case num == entrySeatField && typ == protowire.VarintType:
					e.Seat = int(x)
				case num == entryCardsField && typ == protowire.BytesType:
					c, err := domain.UnmarshalCard(v)
					if err != nil {
						return err
					}
					e.Cards = append(e.Cards, c)
				}
				return nil
			})
			if err != nil {
				return err
			}
			r.Entries = append(r.Entries, e)
		case num == replayWinnerField && typ == protowire.VarintType:
			r.Winner = int(protowire.DecodeZigZag(x))
		}
		return nil
	})
}

// walkFields calls fn for every top-level field in b. Length-delimited
// values arrive in v and varints in x; other wire types are skipped.
func walkFields(b []byte, fn func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", domain.ErrBadEncoding, protowire.ParseError(n))
		}
		b = b[n:]
		var (
			v []byte
			x uint64
		)
		switch typ {
		case protowire.BytesType:
			v, n = protowire.ConsumeBytes(b)
		case protowire.VarintType:
			x, n = protowire.ConsumeVarint(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("%w: %v", domain.ErrBadEncoding, protowire.ParseError(n))
		}
		b = b[n:]
		if typ != protowire.BytesType && typ != protowire.VarintType {
			continue
		}
		if err := fn(num, typ, v, x); err != nil {
			return err
		}
	}
	return nil
}
