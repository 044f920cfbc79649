package app

import "bigtwo/internal/domain"

// EventKind identifies emitted game events for adapters to render or dispatch.
type EventKind string

const (
	EventGameStarted  EventKind = "game_started"
	EventHandDealt    EventKind = "hand_dealt"
	EventCardPlayed   EventKind = "card_played"
	EventTurnPassed   EventKind = "turn_passed"
	EventTrickCleared EventKind = "trick_cleared"
	EventGameEnded    EventKind = "game_ended"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int // seats; empty means broadcast
}

type GameStartedPayload struct {
	GameID    string
	Players   []string
	FirstSeat int
}

type HandDealtPayload struct {
	Seat int
	Hand []domain.Card
}

type CardPlayedPayload struct {
	Seat     int
	Hand     domain.Hand
	NextSeat int
}

type TurnPassedPayload struct {
	Seat     int
	NextSeat int
}

// TrickClearedPayload reports that every other seat passed on Seat's hand.
type TrickClearedPayload struct {
	Seat int
}

type GameEndedPayload struct {
	Winner int
	Turns  int
}
