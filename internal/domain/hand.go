package domain

import "fmt"

// Kind is the category a pile locks onto for the length of a trick.
type Kind int

const (
	// KindNone marks an empty pile.
	KindNone Kind = iota
	KindSingle
	KindDouble
	KindCombo
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "Single"
	case KindDouble:
		return "Double"
	case KindCombo:
		return "Combo"
	default:
		return "None"
	}
}

// Subtype names the 5-card pattern of a Combo. The declaration order is not
// used for valuation; see comboExponent.
type Subtype int

const (
	SubtypeNone Subtype = iota
	Straight
	Flush
	FullHouse
	Bomb
	StraightFlush
	RoyalFlush
)

func (s Subtype) String() string {
	switch s {
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "FullHouse"
	case Bomb:
		return "Bomb"
	case StraightFlush:
		return "StraightFlush"
	case RoyalFlush:
		return "RoyalFlush"
	default:
		return "None"
	}
}

// Hand is a validated grouping of cards played by one player. Only Single,
// Double and Combo implement it.
type Hand interface {
	Kind() Kind
	Cards() []Card
	Strength() float32
	Player() int
	String() string
	sealed()
}

// Single is a one-card hand.
type Single struct {
	card     Card
	player   int
	strength float32
}

// NewSingle never fails: every valid card is a legal single. Classify
// rejects out of range cards before reaching here.
func NewSingle(c Card, player int) Single {
	return Single{card: c, player: player, strength: c.Value()}
}

func (s Single) Kind() Kind          { return KindSingle }
func (s Single) Card() Card          { return s.card }
func (s Single) Cards() []Card       { return []Card{s.card} }
func (s Single) Strength() float32   { return s.strength }
func (s Single) Player() int         { return s.player }
func (s Single) Beats(o Single) bool { return s.strength > o.strength }
func (s Single) String() string      { return fmt.Sprintf("Single %s", s.card) }
func (Single) sealed()               {}

// Double is a pair of cards sharing a rank.
type Double struct {
	cards    [2]Card
	player   int
	strength float32
}

// NewDouble validates that a and b form a pair.
func NewDouble(a, b Card, player int) (Double, error) {
	if a == b {
		return Double{}, ErrDuplicateCard
	}
	if a.Rank != b.Rank {
		return Double{}, ErrRanksDiffer
	}
	if b.Less(a) {
		a, b = b, a
	}
	d := Double{cards: [2]Card{a, b}, player: player}
	strength, err := Gauge(KindDouble, SubtypeNone, d.cards[:])
	if err != nil {
		return Double{}, err
	}
	d.strength = strength
	return d, nil
}

func (d Double) Kind() Kind          { return KindDouble }
func (d Double) Cards() []Card       { return []Card{d.cards[0], d.cards[1]} }
func (d Double) Strength() float32   { return d.strength }
func (d Double) Player() int         { return d.player }
func (d Double) Beats(o Double) bool { return d.strength > o.strength }
func (d Double) String() string      { return fmt.Sprintf("Double %s", FormatCards(d.cards[:])) }
func (Double) sealed()               {}

// Combo is a 5-card hand of a recognized pattern.
type Combo struct {
	cards    [5]Card
	subtype  Subtype
	player   int
	strength float32
}

// NewCombo classifies five cards into a Combo.
func NewCombo(cards []Card, player int) (Combo, error) {
	if len(cards) != 5 {
		return Combo{}, ErrBadLength
	}
	var c Combo
	copy(c.cards[:], cards)
	SortCards(c.cards[:])
	if hasRepeats(c.cards[:]) {
		return Combo{}, ErrDuplicateCard
	}
	sub := comboSubtype(c.cards[:])
	if sub == SubtypeNone {
		return Combo{}, ErrUnknownCombo
	}
	strength, err := Gauge(KindCombo, sub, c.cards[:])
	if err != nil {
		return Combo{}, err
	}
	c.subtype = sub
	c.player = player
	c.strength = strength
	return c, nil
}

func (c Combo) Kind() Kind         { return KindCombo }
func (c Combo) Subtype() Subtype   { return c.subtype }
func (c Combo) Cards() []Card      { return append([]Card(nil), c.cards[:]...) }
func (c Combo) Strength() float32  { return c.strength }
func (c Combo) Player() int        { return c.player }
func (c Combo) Beats(o Combo) bool { return c.strength > o.strength }
func (c Combo) String() string {
	return fmt.Sprintf("%s %s", c.subtype, FormatCards(c.cards[:]))
}
func (Combo) sealed() {}

// SubtypeOf returns the combo subtype of h, or SubtypeNone for other kinds.
func SubtypeOf(h Hand) Subtype {
	if c, ok := h.(Combo); ok {
		return c.subtype
	}
	return SubtypeNone
}

// Beats reports whether next may be played on top of prev. Hands of different
// kinds never beat each other.
func Beats(next, prev Hand) bool {
	switch n := next.(type) {
	case Single:
		p, ok := prev.(Single)
		return ok && n.Beats(p)
	case Double:
		p, ok := prev.(Double)
		return ok && n.Beats(p)
	case Combo:
		p, ok := prev.(Combo)
		return ok && n.Beats(p)
	}
	return false
}
