package nakama

const (
	// RpcClassifyHand classifies a selection of cards and reports its strength.
	RpcClassifyHand = "classify_hand"

	// RpcListCombos lists every playable hand in a set of cards.
	RpcListCombos = "list_combos"

	// RpcSuggestMove asks a bot what it would play.
	RpcSuggestMove = "suggest_move"

	// EnvConfigPath is the runtime env key naming a JSON game config file.
	EnvConfigPath = "bigtwo_config"
)

// gRPC status codes returned through runtime.NewError.
const (
	codeInvalidArgument = 3
	codeNotFound        = 5
	codeInternal        = 13
)
