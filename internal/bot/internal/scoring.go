package internal

import (
	"slices"

	"bigtwo/internal/domain"
)

// Beating keeps the hands that may legally follow top.
func Beating(hands []domain.Hand, top domain.Hand) []domain.Hand {
	out := make([]domain.Hand, 0, len(hands))
	for _, h := range hands {
		if domain.Beats(h, top) {
			out = append(out, h)
		}
	}
	return out
}

// Choose picks the weakest candidate, or the strongest one when strongest is
// set. Candidates touching saved cards are skipped unless nothing else is
// left. It returns nil for an empty candidate list.
func Choose(hands []domain.Hand, saved map[domain.Card]struct{}, strongest bool) domain.Hand {
	if len(hands) == 0 {
		return nil
	}

	pool := make([]domain.Hand, 0, len(hands))
	for _, h := range hands {
		if !domain.ContainsAny(h.Cards(), saved) {
			pool = append(pool, h)
		}
	}
	if len(pool) == 0 {
		pool = slices.Clone(hands)
	}

	slices.SortStableFunc(pool, func(a, b domain.Hand) int {
		switch {
		case a.Strength() < b.Strength():
			return -1
		case a.Strength() > b.Strength():
			return 1
		}
		return 0
	})
	if strongest {
		return pool[len(pool)-1]
	}
	return pool[0]
}
