package nakama

import (
	"encoding/json"
	"errors"
	"testing"

	"ouiste/internal/app"
	"ouiste/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

func TestBuildSessionView(t *testing.T) {
	session, err := domain.NewSession([]string{"Ana", "Bo", "Cleo"})
	if err != nil {
		t.Fatalf("NewSession error: %v", err)
	}
	if err := session.SubmitBets([]int{0, 0, 0}); err != nil {
		t.Fatalf("SubmitBets error: %v", err)
	}

	view := BuildSessionView(session)
	if view.Phase != string(domain.PhaseTricks) {
		t.Errorf("phase = %q, want %q", view.Phase, domain.PhaseTricks)
	}
	if view.Round != 0 || view.TotalRounds != 17 || view.HandSize != 1 {
		t.Errorf("round/total/hand = %d/%d/%d, want 0/17/1", view.Round, view.TotalRounds, view.HandSize)
	}
	if len(view.Players) != 3 || view.Players[2].Name != "Cleo" || view.Players[2].Seat != 2 {
		t.Errorf("unexpected players: %+v", view.Players)
	}
	if len(view.PendingBets) != 3 {
		t.Errorf("pending bets = %v, want 3 zeros", view.PendingBets)
	}
	if view.WinnerSeats != nil {
		t.Errorf("winner seats on a running game = %v, want nil", view.WinnerSeats)
	}
}

func TestMapErrorValidationBecomesPayload(t *testing.T) {
	verr := &domain.ValidationError{Kind: domain.ForbiddenBetSum, Seat: -1, Msg: "bids total the hand size (1)"}

	raw, err := mapError(noopLogger{}, "SubmitBets", verr)
	if err != nil {
		t.Fatalf("mapError returned RPC error for a validation rejection: %v", err)
	}

	var resp struct {
		Error *ErrorView `json:"error"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Kind != string(domain.ForbiddenBetSum) || resp.Error.Seat != -1 {
		t.Fatalf("unexpected error payload: %+v", resp.Error)
	}
}

func TestMapErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"missing session", app.ErrNoActiveSession, codeNotFound},
		{"nothing to resume", app.ErrNoSavedGame, codeNotFound},
		{"bad player count", domain.ErrPlayerCount, codeInvalidArgument},
		{"wrong phase", domain.ErrNotBetting, codeInvalidArgument},
		{"sharing unfinished game", app.ErrGameInProgress, codeInvalidArgument},
		{"storage failure", errors.New("boom"), codeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := mapError(noopLogger{}, "op", tt.err)
			if raw != "" {
				t.Fatalf("expected no payload, got %q", raw)
			}
			var rerr *runtime.Error
			if !errors.As(err, &rerr) {
				t.Fatalf("expected *runtime.Error, got %T", err)
			}
			if int(rerr.Code) != tt.code {
				t.Errorf("code = %d, want %d", rerr.Code, tt.code)
			}
		})
	}
}

func TestEventKinds(t *testing.T) {
	events := []app.Event{{Kind: app.EventBetsLocked}, {Kind: app.EventRoundScored}}
	got := eventKinds(events)
	if len(got) != 2 || got[0] != "bets_locked" || got[1] != "round_scored" {
		t.Errorf("eventKinds = %v", got)
	}
}
