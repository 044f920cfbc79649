package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHand is the parent of every classification failure.
	ErrInvalidHand = errors.New("invalid hand")

	ErrBadLength      = fmt.Errorf("%w: bad length", ErrInvalidHand)
	ErrRanksDiffer    = fmt.Errorf("%w: ranks differ", ErrInvalidHand)
	ErrUnknownCombo   = fmt.Errorf("%w: not a recognized 5-card combo", ErrInvalidHand)
	ErrDuplicateCard  = fmt.Errorf("%w: card repeated", ErrInvalidHand)
	ErrEmptySelection = fmt.Errorf("%w: no cards selected for strength", ErrInvalidHand)
	ErrInvalidCard    = fmt.Errorf("%w: %w", ErrInvalidHand, ErrBadCard)

	ErrKindMismatch  = errors.New("kind mismatch")
	ErrTooWeak       = errors.New("hand does not beat the pile")
	ErrInvalidChunks = errors.New("deck cannot be divided evenly")
	ErrBadCard       = errors.New("bad card")
)
