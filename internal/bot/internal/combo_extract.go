package internal

import (
	"slices"

	"bigtwo/internal/domain"
)

// removeSubset removes the specified cards from a source slice using multiset semantics.
func removeSubset(source []domain.Card, subset []domain.Card) []domain.Card {
	rem := make([]domain.Card, 0, len(source))

	counts := make(map[domain.Card]int)
	for _, c := range subset {
		counts[c]++
	}

	for _, c := range source {
		if counts[c] > 0 {
			counts[c]--
		} else {
			rem = append(rem, c)
		}
	}
	return rem
}

// groupByRank returns same-rank groups in ascending rank order. Each group is
// sorted by suit.
func groupByRank(cards []domain.Card) [][]domain.Card {
	sorted := slices.Clone(cards)
	domain.SortCards(sorted)

	var groups [][]domain.Card
	for _, c := range sorted {
		if n := len(groups); n > 0 && groups[n-1][0].Rank == c.Rank {
			groups[n-1] = append(groups[n-1], c)
			continue
		}
		groups = append(groups, []domain.Card{c})
	}
	return groups
}

// groupBySuit returns each suit's cards sorted by rank.
func groupBySuit(cards []domain.Card) map[domain.Suit][]domain.Card {
	out := make(map[domain.Suit][]domain.Card, 4)
	for _, c := range cards {
		out[c.Suit] = append(out[c.Suit], c)
	}
	for _, g := range out {
		domain.SortCards(g)
	}
	return out
}

// rankRuns splits rank groups into maximal runs of consecutive rank weights.
// Copies of a rank stay together in their group and act as alternates.
func rankRuns(groups [][]domain.Card) [][][]domain.Card {
	var runs [][][]domain.Card
	var cur [][]domain.Card
	for _, g := range groups {
		if len(cur) > 0 && g[0].Rank.Weight() != cur[len(cur)-1][0].Rank.Weight()+1 {
			runs = append(runs, cur)
			cur = nil
		}
		cur = append(cur, g)
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// pick gathers cards[i] for each index.
func pick(cards []domain.Card, idx []int) []domain.Card {
	out := make([]domain.Card, len(idx))
	for i, j := range idx {
		out[i] = cards[j]
	}
	return out
}

// cardSet builds a membership set from groups of cards.
func cardSet(groups ...[]domain.Card) map[domain.Card]struct{} {
	set := make(map[domain.Card]struct{})
	for _, g := range groups {
		for _, c := range g {
			set[c] = struct{}{}
		}
	}
	return set
}
