package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type BotIdentity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Difficulty  string `json:"difficulty"` // "standard", "good"; empty uses the configured level
}

var (
	botIdentities []BotIdentity
	loadOnce      sync.Once
	loadErr       error
)

// ParseIdentities decodes a JSON list of bot profiles and checks each
// difficulty names a known level.
func ParseIdentities(data []byte) ([]BotIdentity, error) {
	var ids []BotIdentity
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bot identities: %w", err)
	}
	for _, id := range ids {
		if id.Difficulty == "" {
			continue
		}
		if _, err := ParseBotLevel(id.Difficulty); err != nil {
			return nil, fmt.Errorf("bot %q: %w", id.DisplayName, err)
		}
	}
	return ids, nil
}

// LoadIdentities loads the bot profiles from the given path.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		botIdentities, loadErr = ParseIdentities(data)
	})
	return loadErr
}

// GetBotIdentity returns an identity for a bot by index (mod pool size).
func GetBotIdentity(index int) BotIdentity {
	if len(botIdentities) == 0 {
		return BotIdentity{
			ID:          fmt.Sprintf("bot-%d", index),
			DisplayName: fmt.Sprintf("AI Player %d", index),
		}
	}
	return botIdentities[index%len(botIdentities)]
}
