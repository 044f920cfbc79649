// Command bigtwo plays Big Two in the terminal against bots or hotseat.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"bigtwo/internal/app"
	"bigtwo/internal/bot"
	"bigtwo/internal/config"
	"bigtwo/internal/logging"
	"bigtwo/internal/ports/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bigtwo:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "JSON game config file")
		players    = flag.Int("players", 0, "number of seats (must divide 52)")
		hotseat    = flag.Bool("hotseat", false, "drive every seat from the terminal")
		humanSeat  = flag.Int("seat", 0, "seat driven from the terminal")
		level      = flag.String("bot-level", "", "bot level: standard or lowest")
		threshold  = flag.Int("threshold", 0, "opponent card count that puts bots under pressure")
		replayDir  = flag.String("replays", "", "directory for JSON replays")
		logLevel   = flag.String("log-level", "", "debug, info, warn, error or off")
		seed       = flag.Int64("seed", 0, "shuffle seed (0 uses the clock)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "players":
			cfg.Players = *players
		case "hotseat":
			cfg.Hotseat = *hotseat
		case "seat":
			cfg.HumanSeat = *humanSeat
		case "bot-level":
			cfg.BotLevel = *level
		case "threshold":
			cfg.EndgameThreshold = *threshold
		case "replays":
			cfg.ReplayDir = *replayDir
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, os.Stderr)
	if cfg.BotIdentities != "" {
		if err := bot.LoadIdentities(cfg.BotIdentities); err != nil {
			logger.Warn("Bot identities not loaded: %v", err)
		}
	}
	opts, err := app.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.WithField("seed", *seed).Debug("Shuffling")
	svc := app.NewService(rand.New(rand.NewSource(*seed)), logger, opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return terminal.NewTable(svc, cfg, logger, os.Stdin, os.Stdout).Run(ctx)
}
