package bot

import (
	"fmt"
	"strings"
)

// BotLevel selects a bot strategy.
type BotLevel int

const (
	BotLevelStandard BotLevel = iota + 1
	BotLevelGood
)

func (l BotLevel) String() string {
	switch l {
	case BotLevelStandard:
		return "standard"
	case BotLevelGood:
		return "good"
	}
	return fmt.Sprintf("BotLevel(%d)", int(l))
}

// ParseBotLevel maps a configured level name to a BotLevel. An empty name
// selects the standard bot.
func ParseBotLevel(name string) (BotLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "standard":
		return BotLevelStandard, nil
	case "good", "lowest":
		return BotLevelGood, nil
	default:
		return 0, fmt.Errorf("unknown bot level: %q", name)
	}
}

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel, tuning Tuning) (Brain, error) {
	switch level {
	case BotLevelStandard:
		return &StandardBot{Tuning: tuning}, nil
	case BotLevelGood:
		return &GoodBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
