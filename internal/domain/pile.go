package domain

// Pile holds the hands accepted during the current trick. The first hand
// locks the pile's kind; every later hand must share it and be stronger than
// the one on top.
type Pile struct {
	hands   []Hand
	kind    Kind
	subtype Subtype
}

// NewPile returns an empty, unlocked pile.
func NewPile() *Pile {
	return &Pile{}
}

// Add classifies cards and places them on the pile. A rejected hand leaves
// the pile untouched.
func (p *Pile) Add(cards []Card, player int) (Hand, error) {
	h, err := Classify(cards, player)
	if err != nil {
		return nil, err
	}
	if p.kind != KindNone && h.Kind() != p.kind {
		return nil, ErrKindMismatch
	}
	if top := p.Top(); top != nil && !Beats(h, top) {
		return nil, ErrTooWeak
	}
	p.kind = h.Kind()
	p.subtype = SubtypeOf(h)
	p.hands = append(p.hands, h)
	return h, nil
}

// Clear empties the pile and unlocks its kind.
func (p *Pile) Clear() {
	p.hands = nil
	p.kind = KindNone
	p.subtype = SubtypeNone
}

// Top returns the most recently accepted hand, or nil.
func (p *Pile) Top() Hand {
	if len(p.hands) == 0 {
		return nil
	}
	return p.hands[len(p.hands)-1]
}

// Owner returns the player of the top hand and false when the pile is empty.
func (p *Pile) Owner() (int, bool) {
	top := p.Top()
	if top == nil {
		return 0, false
	}
	return top.Player(), true
}

func (p *Pile) Kind() Kind       { return p.kind }
func (p *Pile) Subtype() Subtype { return p.subtype }
func (p *Pile) Len() int         { return len(p.hands) }
func (p *Pile) Empty() bool      { return len(p.hands) == 0 }

// Hands returns the accepted hands, oldest first.
func (p *Pile) Hands() []Hand {
	return append([]Hand(nil), p.hands...)
}
