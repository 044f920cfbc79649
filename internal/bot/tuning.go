package bot

// DefaultPressureThreshold is the opponent card count at or below which bots
// stop holding cards back.
const DefaultPressureThreshold = 5

// Tuning holds the knobs of the standard move selector.
type Tuning struct {
	PressureThreshold int
}

// DefaultTuning matches the classic table behaviour.
var DefaultTuning = Tuning{
	PressureThreshold: DefaultPressureThreshold,
}
