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

// NakamaHistoryAdapter implements ports.HistoryPort on Nakama storage. The
// whole saved-game collection is one JSON array under a single key per user;
// loads read it fully and saves replace it fully.
type NakamaHistoryAdapter struct {
	nk     runtime.NakamaModule
	logger runtime.Logger
}

// NewNakamaHistoryAdapter creates a new history adapter.
func NewNakamaHistoryAdapter(nk runtime.NakamaModule, logger runtime.Logger) *NakamaHistoryAdapter {
	return &NakamaHistoryAdapter{nk: nk, logger: logger}
}

// Load returns the saved games, newest first. An absent or unreadable value
// degrades to an empty collection so a corrupt record can never lock a user
// out of the scorer.
func (a *NakamaHistoryAdapter) Load(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	cfg := config.GetGameConfig()
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{
		{
			Collection: cfg.HistoryCollection,
			Key:        cfg.HistoryKey,
			UserID:     userID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read saved games: %w", err)
	}
	if len(objects) == 0 {
		return nil, nil
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal([]byte(objects[0].Value), &entries); err != nil {
		a.logger.Warn("Saved games for user %s are unreadable, starting empty: %v", userID, err)
		return nil, nil
	}
	return entries, nil
}

// Replace overwrites the stored collection with the given entries.
func (a *NakamaHistoryAdapter) Replace(ctx context.Context, userID string, entries []domain.HistoryEntry) error {
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	value, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal saved games: %w", err)
	}

	cfg := config.GetGameConfig()
	_, err = a.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      cfg.HistoryCollection,
			Key:             cfg.HistoryKey,
			UserID:          userID,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write saved games: %w", err)
	}
	return nil
}

var _ ports.HistoryPort = (*NakamaHistoryAdapter)(nil)
