package internal

import (
	"errors"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"

	"bigtwo/internal/domain"
)

// ErrNoCombo is returned by Combos when no 5-card hand can be formed.
var ErrNoCombo = errors.New("no combo available")

// Category names the generator a 5-card candidate came from. Straight and
// Flush candidates may classify as StraightFlush or RoyalFlush.
type Category int

const (
	CategoryStraight Category = iota + 1
	CategoryFlush
	CategoryFullHouse
	CategoryBomb
)

// Categories lists every generator category.
var Categories = []Category{CategoryStraight, CategoryFlush, CategoryFullHouse, CategoryBomb}

func (c Category) String() string {
	switch c {
	case CategoryStraight:
		return "straight"
	case CategoryFlush:
		return "flush"
	case CategoryFullHouse:
		return "full_house"
	case CategoryBomb:
		return "bomb"
	}
	return "unknown"
}

// Duplicates returns every k-card subset of each rank held at least k times.
func Duplicates(cards []domain.Card, k int) [][]domain.Card {
	if k <= 0 {
		return nil
	}
	var out [][]domain.Card
	for _, g := range groupByRank(cards) {
		if len(g) < k {
			continue
		}
		for _, idx := range combin.Combinations(len(g), k) {
			out = append(out, pick(g, idx))
		}
	}
	return out
}

// Bombs pairs every quad with every card of another rank.
func Bombs(cards []domain.Card) [][]domain.Card {
	sorted := slices.Clone(cards)
	domain.SortCards(sorted)

	var out [][]domain.Card
	for _, quad := range Duplicates(sorted, 4) {
		for _, kicker := range sorted {
			if kicker.Rank == quad[0].Rank {
				continue
			}
			out = append(out, append(slices.Clone(quad), kicker))
		}
	}
	return out
}

// FullHouses joins every triple with every pair left after removing it.
func FullHouses(cards []domain.Card) [][]domain.Card {
	var out [][]domain.Card
	for _, triple := range Duplicates(cards, 3) {
		rest := removeSubset(cards, triple)
		for _, pair := range Duplicates(rest, 2) {
			out = append(out, append(slices.Clone(triple), pair...))
		}
	}
	return out
}

// Straights returns every 5-card window over runs of consecutive ranks. When
// a rank is held more than once, each copy is substituted in turn.
func Straights(cards []domain.Card) [][]domain.Card {
	var out [][]domain.Card
	for _, run := range rankRuns(groupByRank(cards)) {
		for start := 0; start+5 <= len(run); start++ {
			window := run[start : start+5]
			lens := make([]int, len(window))
			for i, g := range window {
				lens[i] = len(g)
			}
			for _, choice := range combin.Cartesian(lens) {
				straight := make([]domain.Card, len(window))
				for i, g := range window {
					straight[i] = g[choice[i]]
				}
				out = append(out, straight)
			}
		}
	}
	return out
}

// Flushes returns every 5-card subset of each suit held at least five times.
func Flushes(cards []domain.Card) [][]domain.Card {
	bySuit := groupBySuit(cards)
	var out [][]domain.Card
	for _, s := range domain.Suits {
		g := bySuit[s]
		if len(g) < 5 {
			continue
		}
		for _, idx := range combin.Combinations(len(g), 5) {
			out = append(out, pick(g, idx))
		}
	}
	return out
}

// Combos runs the four 5-card generators concurrently, each over its own copy
// of cards. Categories with no candidates are absent from the result.
func Combos(cards []domain.Card) (map[Category][][]domain.Card, error) {
	generators := map[Category]func([]domain.Card) [][]domain.Card{
		CategoryStraight:  Straights,
		CategoryFlush:     Flushes,
		CategoryFullHouse: FullHouses,
		CategoryBomb:      Bombs,
	}

	results := make([][][]domain.Card, len(Categories))
	var g errgroup.Group
	for i, cat := range Categories {
		gen := generators[cat]
		own := slices.Clone(cards)
		g.Go(func() error {
			results[i] = gen(own)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[Category][][]domain.Card, len(Categories))
	for i, cat := range Categories {
		if len(results[i]) > 0 {
			out[cat] = results[i]
		}
	}
	if len(out) == 0 {
		return nil, ErrNoCombo
	}
	return out, nil
}
