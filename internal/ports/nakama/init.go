package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"bigtwo/internal/bot"
	"bigtwo/internal/config"
)

// InitModule loads the game config named by the runtime env and registers
// the rules RPCs.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if path := env[EnvConfigPath]; path != "" {
		if err := config.LoadGameConfig(path); err != nil {
			return err
		}
	}
	cfg := config.GetGameConfig()
	if cfg.BotIdentities != "" {
		if err := bot.LoadIdentities(cfg.BotIdentities); err != nil {
			logger.Warn("Bot identities not loaded: %v", err)
		}
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.WithFields(map[string]interface{}{
		"bot_level": cfg.BotLevel,
		"threshold": cfg.EndgameThreshold,
	}).Info("Big Two rules module loaded.")
	return nil
}
