package domain

// RemoveCards returns hand without the played cards, one copy per played card.
func RemoveCards(hand []Card, played []Card) []Card {
	out := append([]Card{}, hand...)
	for _, pc := range played {
		for i := 0; i < len(out); i++ {
			if out[i] == pc {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}
	return out
}

// ContainsAll reports whether every card in cards is held in hand.
func ContainsAll(hand []Card, cards []Card) bool {
	held := make(map[Card]int, len(hand))
	for _, c := range hand {
		held[c]++
	}
	for _, c := range cards {
		if held[c] == 0 {
			return false
		}
		held[c]--
	}
	return true
}

// ContainsAny reports whether any card in cards is in set.
func ContainsAny(cards []Card, set map[Card]struct{}) bool {
	for _, c := range cards {
		if _, ok := set[c]; ok {
			return true
		}
	}
	return false
}
