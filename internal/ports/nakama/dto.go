package nakama

import (
	"ouiste/internal/app"
	"ouiste/internal/domain"
)

// Request payloads. RPC payloads are JSON strings per Nakama convention.

type startRequest struct {
	Players []string `json:"players"`
}

type betsRequest struct {
	Bets []int `json:"bets"`
}

type tricksRequest struct {
	Tricks []int `json:"tricks"`
}

type saveRequest struct {
	GameName string `json:"game_name"`
}

type hintRequest struct {
	PriorBets []int `json:"prior_bets"`
}

type shareRequest struct {
	// Index into the saved-game list, newest first. Defaults to 0.
	Index int `json:"index"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

// Response payloads.

type PlayerView struct {
	Seat int    `json:"seat"`
	Name string `json:"name"`
}

type RoundView struct {
	HandSize int   `json:"hand_size"`
	Bets     []int `json:"bets"`
	Tricks   []int `json:"tricks"`
	Points   []int `json:"points"`
}

// SessionView is the client-facing snapshot of a session.
type SessionView struct {
	Phase       string       `json:"phase"`
	Round       int          `json:"round"`
	TotalRounds int          `json:"total_rounds"`
	HandSize    int          `json:"hand_size"`
	Players     []PlayerView `json:"players"`
	Scores      []int        `json:"scores"`
	PendingBets []int        `json:"pending_bets,omitempty"`
	Rounds      []RoundView  `json:"rounds"`
	WinnerSeats []int        `json:"winner_seats,omitempty"`
}

// ErrorView reports a rejected transition with its validation kind so the UI
// can point at the offending input.
type ErrorView struct {
	Kind    string `json:"kind"`
	Seat    int    `json:"seat"`
	Message string `json:"message"`
}

type sessionResponse struct {
	Session *SessionView `json:"session,omitempty"`
	Events  []string     `json:"events,omitempty"`
	Error   *ErrorView   `json:"error,omitempty"`
}

type saveResponse struct {
	Entry  domain.HistoryEntry `json:"entry"`
	Events []string            `json:"events,omitempty"`
}

type historyResponse struct {
	Entries []domain.HistoryEntry `json:"entries"`
}

type hintResponse struct {
	Bid int `json:"bid"`
}

type shareResponse struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Claims map[string]interface{} `json:"claims"`
}

// BuildSessionView maps a domain session to its client snapshot.
func BuildSessionView(s *domain.GameSession) *SessionView {
	players := make([]PlayerView, len(s.Players))
	for i, p := range s.Players {
		players[i] = PlayerView{Seat: p.Seat, Name: p.Name}
	}
	rounds := make([]RoundView, len(s.Rounds))
	for i, r := range s.Rounds {
		rounds[i] = RoundView{
			HandSize: r.HandSize,
			Bets:     r.Bets,
			Tricks:   r.Tricks,
			Points:   r.Points,
		}
	}
	return &SessionView{
		Phase:       string(s.Phase),
		Round:       s.CurrentRound,
		TotalRounds: s.TotalRounds(),
		HandSize:    s.HandSize(),
		Players:     players,
		Scores:      s.Scores,
		PendingBets: s.PendingBets,
		Rounds:      rounds,
		WinnerSeats: s.Winners(),
	}
}

func eventKinds(events []app.Event) []string {
	kinds := make([]string, len(events))
	for i, ev := range events {
		kinds[i] = string(ev.Kind)
	}
	return kinds
}

func toErrorView(verr *domain.ValidationError) *ErrorView {
	return &ErrorView{
		Kind:    string(verr.Kind),
		Seat:    verr.Seat,
		Message: verr.Msg,
	}
}
