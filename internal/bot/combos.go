package bot

import (
	botinternal "bigtwo/internal/bot/internal"
	"bigtwo/internal/domain"
)

// ErrNoCombo is returned by ListCombos when no 5-card hand can be formed.
var ErrNoCombo = botinternal.ErrNoCombo

// Catalog lists every hand a card set can form, grouped by name:
// "single", "double", and one entry per 5-card generator category.
type Catalog map[string][]domain.Hand

// ListCombos enumerates every legal hand in cards for player. It fails with
// ErrNoCombo only when asked for 5-card hands and none exist.
func ListCombos(cards []domain.Card, player int, fiveOnly bool) (Catalog, error) {
	out := make(Catalog)
	if !fiveOnly {
		out["single"] = candidatesOfKind(cards, player, domain.KindSingle)
		if doubles := candidatesOfKind(cards, player, domain.KindDouble); len(doubles) > 0 {
			out["double"] = doubles
		}
	}

	combos, err := botinternal.Combos(cards)
	if err != nil {
		if fiveOnly {
			return nil, err
		}
		return out, nil
	}
	for cat, groups := range combos {
		out[cat.String()] = botinternal.ClassifyAll(groups, player)
	}
	return out, nil
}
