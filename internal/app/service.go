package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ouiste/internal/domain"
	"ouiste/internal/ports"
)

var (
	ErrNoActiveSession = errors.New("no active session")
	ErrNoSavedGame     = errors.New("no in-progress saved game")
)

// Service contains the scoring use-cases operating on domain sessions.
// Sessions and saved games are persisted through the injected ports; every
// use-case loads state fully, applies one transition, and writes state back
// fully.
type Service struct {
	history  ports.HistoryPort
	sessions ports.SessionPort
	now      func() time.Time
}

// NewService constructs a Service with the given ports. now may be nil to use
// the wall clock.
func NewService(history ports.HistoryPort, sessions ports.SessionPort, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		history:  history,
		sessions: sessions,
		now:      now,
	}
}

// StartSession begins a fresh game for the given player names and stores it
// as the user's active session, replacing any previous one.
func (s *Service) StartSession(ctx context.Context, userID string, names []string) (*domain.GameSession, []Event, error) {
	session, err := domain.NewSession(names)
	if err != nil {
		return nil, nil, err
	}
	if err := s.sessions.Save(ctx, userID, session); err != nil {
		return nil, nil, fmt.Errorf("failed to store session: %w", err)
	}

	events := []Event{{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			Players:     session.Players,
			TotalRounds: session.TotalRounds(),
			HandSize:    session.HandSize(),
		},
	}}
	return session, events, nil
}

// CurrentSession returns the user's active session, or ErrNoActiveSession.
func (s *Service) CurrentSession(ctx context.Context, userID string) (*domain.GameSession, error) {
	session, err := s.sessions.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}
	return session, nil
}

// SubmitBets locks the current round's bids. Domain rejections pass through
// unchanged so the transport layer can report the specific validation kind.
func (s *Service) SubmitBets(ctx context.Context, userID string, bets []int) (*domain.GameSession, []Event, error) {
	session, err := s.CurrentSession(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if err := session.SubmitBets(bets); err != nil {
		return nil, nil, err
	}
	if err := s.sessions.Save(ctx, userID, session); err != nil {
		return nil, nil, fmt.Errorf("failed to store session: %w", err)
	}

	events := []Event{{
		Kind: EventBetsLocked,
		Payload: BetsLockedPayload{
			Round:    session.CurrentRound,
			HandSize: session.HandSize(),
			Bets:     session.PendingBets,
		},
	}}
	return session, events, nil
}

// SubmitTricks records the round's outcomes and scores it. When the last
// round locks, a GameFinished event carries the final standings.
func (s *Service) SubmitTricks(ctx context.Context, userID string, tricks []int) (*domain.GameSession, []Event, error) {
	session, err := s.CurrentSession(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	scoredRound := session.CurrentRound
	if err := session.SubmitTricks(tricks); err != nil {
		return nil, nil, err
	}
	if err := s.sessions.Save(ctx, userID, session); err != nil {
		return nil, nil, fmt.Errorf("failed to store session: %w", err)
	}

	locked := session.Rounds[len(session.Rounds)-1]
	events := []Event{{
		Kind: EventRoundScored,
		Payload: RoundScoredPayload{
			Round:    scoredRound,
			HandSize: locked.HandSize,
			Tricks:   locked.Tricks,
			Points:   locked.Points,
			Scores:   session.Scores,
		},
	}}
	if session.Phase == domain.PhaseFinished {
		events = append(events, Event{
			Kind: EventGameFinished,
			Payload: GameFinishedPayload{
				FinalScores: session.Scores,
				WinnerSeats: session.Winners(),
			},
		})
	}
	return session, events, nil
}

// SaveSession snapshots the active session onto the front of the saved-game
// collection. Entries are never mutated or merged; saving twice produces two
// snapshots. Bids pending for the unlocked round are not part of the
// snapshot.
func (s *Service) SaveSession(ctx context.Context, userID, gameName string) (domain.HistoryEntry, []Event, error) {
	session, err := s.CurrentSession(ctx, userID)
	if err != nil {
		return domain.HistoryEntry{}, nil, err
	}

	entry := domain.NewHistoryEntry(session, gameName, s.now())
	entries, err := s.history.Load(ctx, userID)
	if err != nil {
		return domain.HistoryEntry{}, nil, fmt.Errorf("failed to load history: %w", err)
	}
	entries = append([]domain.HistoryEntry{entry}, entries...)
	if err := s.history.Replace(ctx, userID, entries); err != nil {
		return domain.HistoryEntry{}, nil, fmt.Errorf("failed to store history: %w", err)
	}

	events := []Event{{
		Kind: EventGameSaved,
		Payload: GameSavedPayload{
			Date:       entry.Date,
			GameName:   entry.GameName,
			InProgress: entry.InProgress,
		},
	}}
	return entry, events, nil
}

// ListHistory returns the saved games, newest first.
func (s *Service) ListHistory(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	entries, err := s.history.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return entries, nil
}

// ResumeLatest rebuilds the in-progress saved game with the most recent date
// and makes it the active session. Collection order is newest-first, so the
// date comparison usually agrees with it; the explicit rule keeps resumption
// deterministic when it does not.
func (s *Service) ResumeLatest(ctx context.Context, userID string) (*domain.GameSession, []Event, error) {
	entries, err := s.history.Load(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}

	best := -1
	for i, entry := range entries {
		if !entry.InProgress {
			continue
		}
		if best == -1 || entry.Date.After(entries[best].Date) {
			best = i
		}
	}
	if best == -1 {
		return nil, nil, ErrNoSavedGame
	}

	session, err := domain.RestoreSession(entries[best])
	if err != nil {
		return nil, nil, err
	}
	if err := s.sessions.Save(ctx, userID, session); err != nil {
		return nil, nil, fmt.Errorf("failed to store session: %w", err)
	}

	events := []Event{{
		Kind: EventGameResumed,
		Payload: GameResumedPayload{
			Round:    session.CurrentRound,
			HandSize: session.HandSize(),
			Scores:   session.Scores,
		},
	}}
	return session, events, nil
}

// AbandonSession discards the active session without saving it.
func (s *Service) AbandonSession(ctx context.Context, userID string) error {
	if err := s.sessions.Clear(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
