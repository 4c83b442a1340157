package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"ouiste/internal/config"
	"ouiste/internal/domain"
	"ouiste/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaSessionAdapter implements ports.SessionPort on Nakama storage: one
// JSON snapshot of the active session per user, replaced whole on every
// transition.
type NakamaSessionAdapter struct {
	nk     runtime.NakamaModule
	logger runtime.Logger
}

// NewNakamaSessionAdapter creates a new session adapter.
func NewNakamaSessionAdapter(nk runtime.NakamaModule, logger runtime.Logger) *NakamaSessionAdapter {
	return &NakamaSessionAdapter{nk: nk, logger: logger}
}

// Load returns the stored active session, or nil when none exists. An
// unreadable snapshot degrades to nil; the user starts or resumes instead.
func (a *NakamaSessionAdapter) Load(ctx context.Context, userID string) (*domain.GameSession, error) {
	cfg := config.GetGameConfig()
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{
		{
			Collection: cfg.SessionCollection,
			Key:        cfg.SessionKey,
			UserID:     userID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if len(objects) == 0 {
		return nil, nil
	}

	var session domain.GameSession
	if err := json.Unmarshal([]byte(objects[0].Value), &session); err != nil {
		a.logger.Warn("Active session for user %s is unreadable, discarding: %v", userID, err)
		return nil, nil
	}
	return &session, nil
}

// Save replaces the stored session snapshot.
func (a *NakamaSessionAdapter) Save(ctx context.Context, userID string, session *domain.GameSession) error {
	value, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	cfg := config.GetGameConfig()
	_, err = a.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      cfg.SessionCollection,
			Key:             cfg.SessionKey,
			UserID:          userID,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the stored session snapshot.
func (a *NakamaSessionAdapter) Clear(ctx context.Context, userID string) error {
	cfg := config.GetGameConfig()
	err := a.nk.StorageDelete(ctx, []*runtime.StorageDelete{
		{
			Collection: cfg.SessionCollection,
			Key:        cfg.SessionKey,
			UserID:     userID,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

var _ ports.SessionPort = (*NakamaSessionAdapter)(nil)
