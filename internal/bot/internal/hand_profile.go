package internal

import "bigtwo/internal/domain"

// HandProfile records the strongest grouping of each category in a hand.
// Those are the cards a bot holds back while no opponent is close to going out.
type HandProfile struct {
	StrongestPair  domain.Hand
	StrongestCombo map[Category]domain.Hand
}

// ProfileHand finds the strongest pair and the strongest combo per category.
func ProfileHand(cards []domain.Card, player int) HandProfile {
	profile := HandProfile{StrongestCombo: make(map[Category]domain.Hand)}

	profile.StrongestPair = strongest(ClassifyAll(Duplicates(cards, 2), player))

	combos, err := Combos(cards)
	if err != nil {
		return profile
	}
	for cat, groups := range combos {
		if best := strongest(ClassifyAll(groups, player)); best != nil {
			profile.StrongestCombo[cat] = best
		}
	}
	return profile
}

// SaveSet is the union of the cards in every recorded grouping.
func (p HandProfile) SaveSet() map[domain.Card]struct{} {
	groups := make([][]domain.Card, 0, len(p.StrongestCombo)+1)
	if p.StrongestPair != nil {
		groups = append(groups, p.StrongestPair.Cards())
	}
	for _, h := range p.StrongestCombo {
		groups = append(groups, h.Cards())
	}
	return cardSet(groups...)
}

// ClassifyAll turns candidate groups into hands, skipping any that fail to
// classify.
func ClassifyAll(groups [][]domain.Card, player int) []domain.Hand {
	out := make([]domain.Hand, 0, len(groups))
	for _, g := range groups {
		h, err := domain.Classify(g, player)
		if err != nil {
			continue
		}
		out = append(out, h)
	}
	return out
}

func strongest(hands []domain.Hand) domain.Hand {
	var best domain.Hand
	for _, h := range hands {
		if best == nil || h.Strength() > best.Strength() {
			best = h
		}
	}
	return best
}
