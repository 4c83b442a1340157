package app

import (
	"time"

	"ouiste/internal/domain"
)

// EventKind identifies emitted app events for the transport layer.
type EventKind string

const (
	EventGameStarted  EventKind = "game_started"
	EventBetsLocked   EventKind = "bets_locked"
	EventRoundScored  EventKind = "round_scored"
	EventGameFinished EventKind = "game_finished"
	EventGameSaved    EventKind = "game_saved"
	EventGameResumed  EventKind = "game_resumed"
)

// Event is an app-level event describing what a use-case changed.
type Event struct {
	Kind    EventKind
	Payload any
}

type GameStartedPayload struct {
	Players     []domain.Player
	TotalRounds int
	HandSize    int
}

type BetsLockedPayload struct {
	Round    int
	HandSize int
	Bets     []int
}

type RoundScoredPayload struct {
	Round    int
	HandSize int
	Tricks   []int
	Points   []int
	Scores   []int
}

type GameFinishedPayload struct {
	FinalScores []int
	WinnerSeats []int
}

type GameSavedPayload struct {
	Date       time.Time
	GameName   string
	InProgress bool
}

type GameResumedPayload struct {
	Round    int
	HandSize int
	Scores   []int
}
