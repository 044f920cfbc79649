package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"bigtwo/internal/domain"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid game config")

type GameConfig struct {
	// Players is the number of seats dealt in; it must divide the deck evenly.
	Players int `json:"players"`
	// Hotseat lets every seat be driven from the terminal.
	Hotseat bool `json:"hotseat"`
	// HumanSeat is the seat driven from the terminal when not hotseat.
	HumanSeat int `json:"human_seat"`
	// EndgameThreshold is the opponent card count at which bots stop saving cards.
	EndgameThreshold int    `json:"endgame_threshold"`
	BotLevel         string `json:"bot_level"`
	BotIdentities    string `json:"bot_identities"`
	LogLevel         string `json:"log_level"`
	// ReplayDir receives a JSON replay per finished game when set.
	ReplayDir string `json:"replay_dir"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// Default returns the settings of a classic four-player table.
func Default() GameConfig {
	return GameConfig{
		Players:          4,
		Hotseat:          false,
		HumanSeat:        1,
		EndgameThreshold: 5,
		BotLevel:         "standard",
		LogLevel:         "info",
	}
}

// Load reads a JSON config file on top of Default and validates it.
func Load(path string) (GameConfig, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read game config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks the seat layout and thresholds. The deck must deal evenly
// across Players.
func (c GameConfig) Validate() error {
	if c.Players < 1 {
		return fmt.Errorf("%w: players = %d", ErrInvalidConfig, c.Players)
	}
	if domain.DeckSize%c.Players != 0 {
		return fmt.Errorf("%w: %d players cannot split %d cards", ErrInvalidConfig, c.Players, domain.DeckSize)
	}
	if !c.Hotseat && (c.HumanSeat < 0 || c.HumanSeat >= c.Players) {
		return fmt.Errorf("%w: human_seat %d outside %d seats", ErrInvalidConfig, c.HumanSeat, c.Players)
	}
	if c.EndgameThreshold < 0 {
		return fmt.Errorf("%w: endgame_threshold = %d", ErrInvalidConfig, c.EndgameThreshold)
	}
	return nil
}

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		c, err := Load(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or the defaults when
// none was loaded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		d := Default()
		return &d
	}
	return cfg
}
