package nakama

import (
	"bigtwo/internal/bot"
	"bigtwo/internal/domain"
)

// handView is the client-facing form of a classified hand.
type handView struct {
	Kind     string        `json:"kind"`
	Subtype  string        `json:"subtype,omitempty"`
	Cards    []domain.Card `json:"cards"`
	Strength float32       `json:"strength"`
	Label    string        `json:"label"`
}

func handToView(h domain.Hand) handView {
	v := handView{
		Kind:     h.Kind().String(),
		Cards:    h.Cards(),
		Strength: h.Strength(),
		Label:    domain.FormatCards(h.Cards()),
	}
	if sub := domain.SubtypeOf(h); sub != domain.SubtypeNone {
		v.Subtype = sub.String()
	}
	return v
}

func handsToView(hands []domain.Hand) []handView {
	out := make([]handView, 0, len(hands))
	for _, h := range hands {
		out = append(out, handToView(h))
	}
	return out
}

func catalogToView(c bot.Catalog) map[string][]handView {
	out := make(map[string][]handView, len(c))
	for name, hands := range c {
		out[name] = handsToView(hands)
	}
	return out
}

// parseOptionalCards accepts an empty string as no cards.
func parseOptionalCards(s string) ([]domain.Card, error) {
	if s == "" {
		return nil, nil
	}
	return domain.ParseCards(s)
}
