package domain

import (
	"errors"
	"time"
)

// ErrBadHistoryEntry is returned when a persisted entry cannot be rebuilt
// into a session (mismatched lengths, round index out of range).
var ErrBadHistoryEntry = errors.New("history entry is inconsistent")

// HistoryEntry is the persisted snapshot of a finished or in-progress game.
// Entries are immutable once written; saving again prepends a new snapshot.
type HistoryEntry struct {
	Date              time.Time     `json:"date"`
	GameName          string        `json:"game_name,omitempty"`
	PlayerNames       []string      `json:"player_names"`
	Rounds            []RoundRecord `json:"rounds"`
	FinalScores       []int         `json:"final_scores"`
	CurrentRoundIndex int           `json:"current_round_index"`
	InProgress        bool          `json:"in_progress"`
}

// NewHistoryEntry snapshots a session for persistence. Only locked rounds are
// captured; bids pending for the round in flight are dropped, so resuming
// re-enters that round at the betting phase.
func NewHistoryEntry(s *GameSession, gameName string, now time.Time) HistoryEntry {
	names := make([]string, len(s.Players))
	for i, p := range s.Players {
		names[i] = p.Name
	}
	return HistoryEntry{
		Date:              now,
		GameName:          gameName,
		PlayerNames:       names,
		Rounds:            append([]RoundRecord(nil), s.Rounds...),
		FinalScores:       append([]int(nil), s.Scores...),
		CurrentRoundIndex: s.CurrentRound,
		InProgress:        s.Phase != PhaseFinished,
	}
}

// RestoreSession rebuilds a live session from a persisted entry. Players get
// fresh positional identity, the round spec is regenerated from the player
// count, and the phase re-enters at betting for the recorded round index.
// Round points are backfilled through ScoreRound so entries written before a
// scoring fix (or edited by hand) display consistently.
func RestoreSession(e HistoryEntry) (*GameSession, error) {
	s, err := NewSession(e.PlayerNames)
	if err != nil {
		return nil, err
	}
	if len(e.FinalScores) != len(s.Players) {
		return nil, ErrBadHistoryEntry
	}
	if e.CurrentRoundIndex < 0 || e.CurrentRoundIndex >= len(s.RoundSpec) {
		return nil, ErrBadHistoryEntry
	}

	rounds := make([]RoundRecord, len(e.Rounds))
	for i, r := range e.Rounds {
		if len(r.Bets) != len(s.Players) || len(r.Tricks) != len(s.Players) {
			return nil, ErrBadHistoryEntry
		}
		rounds[i] = RoundRecord{
			HandSize: r.HandSize,
			Bets:     append([]int(nil), r.Bets...),
			Tricks:   append([]int(nil), r.Tricks...),
			Points:   ScoreRound(r.Bets, r.Tricks, r.HandSize),
		}
	}

	s.Scores = append([]int(nil), e.FinalScores...)
	s.Rounds = rounds
	s.CurrentRound = e.CurrentRoundIndex
	s.Phase = PhaseBet
	return s, nil
}
