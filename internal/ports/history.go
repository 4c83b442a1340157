package ports

import (
	"context"

	"ouiste/internal/domain"
)

// HistoryPort persists the saved-game collection for a user. The whole
// collection lives under one storage value: reads load it fully, writes
// replace it fully. Absent or unreadable values degrade to an empty
// collection, never an error the caller must branch on.
type HistoryPort interface {
	// Load returns the saved games, newest first.
	Load(ctx context.Context, userID string) ([]domain.HistoryEntry, error)

	// Replace overwrites the stored collection with the given entries.
	Replace(ctx context.Context, userID string, entries []domain.HistoryEntry) error
}
