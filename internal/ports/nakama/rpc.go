package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/heroiclabs/nakama-common/runtime"

	"bigtwo/internal/bot"
	"bigtwo/internal/config"
	"bigtwo/internal/domain"
)

// RegisterRPCs registers the rules RPCs with the Nakama initializer.
func RegisterRPCs(initializer runtime.Initializer) error {
	rpcs := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcClassifyHand: RpcClassifyHandler,
		RpcListCombos:   RpcListCombosHandler,
		RpcSuggestMove:  RpcSuggestMoveHandler,
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return err
		}
	}
	return nil
}

type classifyRequest struct {
	Cards  string `json:"cards"`
	Player int    `json:"player"`
}

// RpcClassifyHandler classifies a card selection.
// Payload: {"cards": "3D 3S", "player": 0}
// Returns: the hand's kind, subtype, cards and strength.
func RpcClassifyHandler(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req classifyRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	cards, err := domain.ParseCards(req.Cards)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	h, err := domain.Classify(cards, req.Player)
	if err != nil {
		logger.WithField("rpc", RpcClassifyHand).Debug("Rejected %q: %v", req.Cards, err)
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	return respond(logger, handToView(h))
}

type listCombosRequest struct {
	Cards    string `json:"cards"`
	Player   int    `json:"player"`
	FiveOnly bool   `json:"five_only"`
}

// RpcListCombosHandler lists playable hands grouped by name
// ("single", "double", "straight", "flush", "full_house", "bomb").
// Payload: {"cards": "3D 4D 5D 6D 7D 9S", "five_only": true}
func RpcListCombosHandler(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req listCombosRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	cards, err := domain.ParseCards(req.Cards)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	catalog, err := bot.ListCombos(cards, req.Player, req.FiveOnly)
	if errors.Is(err, bot.ErrNoCombo) {
		return "", runtime.NewError(err.Error(), codeNotFound)
	}
	if err != nil {
		logger.WithField("rpc", RpcListCombos).Error("Listing combos failed: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return respond(logger, map[string]any{"combos": catalogToView(catalog)})
}

type suggestRequest struct {
	Hand      string `json:"hand"`
	Seat      int    `json:"seat"`
	Top       string `json:"top"`
	TopPlayer int    `json:"top_player"`
	CardsLeft []int  `json:"cards_left"`
	Level     string `json:"level"`
}

type suggestResponse struct {
	Pass bool      `json:"pass"`
	Hand *handView `json:"hand,omitempty"`
}

// RpcSuggestMoveHandler asks a bot for its move. An empty top means the
// caller leads.
// Payload: {"hand": "3D 4C 9H", "seat": 0, "top": "8S", "top_player": 3,
// "cards_left": [3, 10, 8, 4], "level": "standard"}
func RpcSuggestMoveHandler(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req suggestRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	hand, err := domain.ParseCards(req.Hand)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	topCards, err := parseOptionalCards(req.Top)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	turn := bot.Turn{Seat: req.Seat, Hand: hand, CardsLeft: req.CardsLeft}
	if len(topCards) > 0 {
		if turn.Top, err = domain.Classify(topCards, req.TopPlayer); err != nil {
			return "", runtime.NewError("top: "+err.Error(), codeInvalidArgument)
		}
	}

	level := req.Level
	if level == "" {
		level = config.GetGameConfig().BotLevel
	}
	parsed, err := bot.ParseBotLevel(level)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	brain, err := bot.NewBrain(parsed, bot.Tuning{PressureThreshold: config.GetGameConfig().EndgameThreshold})
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	move, err := brain.CalculateMove(turn)
	if err != nil {
		logger.WithField("rpc", RpcSuggestMove).Error("Bot failed: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	res := suggestResponse{Pass: move.Pass}
	if !move.Pass {
		v := handToView(move.Hand)
		res.Hand = &v
	}
	return respond(logger, res)
}

func respond(logger runtime.Logger, v any) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to encode response: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return string(out), nil
}
