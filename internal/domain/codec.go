package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrBadEncoding reports a malformed binary card or hand.
var ErrBadEncoding = errors.New("bad encoding")

// Cards serialize as their (rank, suit) pair, e.g. {"rank":"Ace","suit":"Spade"}.

// UnmarshalJSON rejects cards with a missing or out of range field.
func (c *Card) UnmarshalJSON(b []byte) error {
	type plain Card
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if !Card(v).Valid() {
		return fmt.Errorf("%w: %s", ErrBadCard, b)
	}
	*c = Card(v)
	return nil
}

func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: rank %d", ErrBadCard, uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(b []byte) error {
	v, err := ParseRank(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (s Suit) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: suit %d", ErrBadCard, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Suit) UnmarshalText(b []byte) error {
	v, err := ParseSuit(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// EncodeHand writes a hand as its ordered card list.
func EncodeHand(h Hand) ([]byte, error) {
	return json.Marshal(h.Cards())
}

// DecodeHand reads a card list and classifies it for player.
func DecodeHand(data []byte, player int) (Hand, error) {
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		if errors.Is(err, ErrBadCard) {
			return nil, fmt.Errorf("decode hand: %w: %w", ErrInvalidHand, err)
		}
		return nil, fmt.Errorf("decode hand: %w", err)
	}
	return Classify(cards, player)
}

// Binary layout, protobuf wire compatible:
//
//	message Card { uint32 rank = 1; uint32 suit = 2; }
//	message Hand { repeated Card cards = 1; sint32 player = 2; }
const (
	cardRankField  protowire.Number = 1
	cardSuitField  protowire.Number = 2
	handCardsField protowire.Number = 1
	handOwnerField protowire.Number = 2
)

// AppendCard appends the wire form of c to b.
func AppendCard(b []byte, c Card) []byte {
	b = protowire.AppendTag(b, cardRankField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(c.Rank))
	b = protowire.AppendTag(b, cardSuitField, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(c.Suit))
}

// UnmarshalCard decodes a single wire-form card.
func UnmarshalCard(b []byte) (Card, error) {
	var c Card
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Card{}, fmt.Errorf("%w: %v", ErrBadEncoding, protowire.ParseError(n))
		}
		b = b[n:]
		if typ != protowire.VarintType || (num != cardRankField && num != cardSuitField) {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Card{}, fmt.Errorf("%w: %v", ErrBadEncoding, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return Card{}, fmt.Errorf("%w: %v", ErrBadEncoding, protowire.ParseError(n))
		}
		b = b[n:]
		if num == cardRankField {
			c.Rank = Rank(v)
		} else {
			c.Suit = Suit(v)
		}
	}
	if !c.Rank.Valid() || !c.Suit.Valid() {
		return Card{}, fmt.Errorf("%w: card out of range", ErrBadEncoding)
	}
	return c, nil
}

// AppendCards appends each card as a length-delimited field num.
func AppendCards(b []byte, num protowire.Number, cards []Card) []byte {
	for _, c := range cards {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, AppendCard(nil, c))
	}
	return b
}

// MarshalHandBinary encodes a hand and its player.
func MarshalHandBinary(h Hand) []byte {
	b := AppendCards(nil, handCardsField, h.Cards())
	b = protowire.AppendTag(b, handOwnerField, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(h.Player())))
}

// UnmarshalHandBinary decodes and re-validates a hand.
func UnmarshalHandBinary(b []byte) (Hand, error) {
	var (
		cards  []Card
		player int
	)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrBadEncoding, protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == handCardsField && typ == protowire.BytesType:
			raw, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrBadEncoding, protowire.ParseError(n))
			}
			c, err := UnmarshalCard(raw)
			if err != nil {
				return nil, err
			}
			cards = append(cards, c)
			b = b[n:]
		case num == handOwnerField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrBadEncoding, protowire.ParseError(n))
			}
			player = int(protowire.DecodeZigZag(v))
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrBadEncoding, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return Classify(cards, player)
}
