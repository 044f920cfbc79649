package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"players": 2, "human_seat": 0, "bot_level": "good"}`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Players != 2 || c.HumanSeat != 0 || c.BotLevel != "good" {
		t.Fatalf("config = %+v", c)
	}
	if c.EndgameThreshold != 5 {
		t.Fatalf("EndgameThreshold = %d, want default 5", c.EndgameThreshold)
	}
}

func TestLoadRejectsBadSeats(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no players", `{"players": 0}`},
		{"uneven deal", `{"players": 3, "human_seat": 0}`},
		{"more seats than cards", `{"players": 104, "human_seat": 0}`},
		{"human seat outside table", `{"players": 2, "human_seat": 2}`},
		{"negative threshold", `{"endgame_threshold": -1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
}

func TestHotseatIgnoresHumanSeat(t *testing.T) {
	c := Default()
	c.Hotseat = true
	c.HumanSeat = 9
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestGetGameConfigDefaults(t *testing.T) {
	if got := GetGameConfig(); got.Players != 4 {
		t.Fatalf("Players = %d, want 4", got.Players)
	}
}
