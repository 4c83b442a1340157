package ports

import (
	"context"

	"ouiste/internal/domain"
)

// SessionPort persists the single active session snapshot for a user so a
// game in progress survives the stateless RPC surface. Load returns nil with
// no error when no session is stored.
type SessionPort interface {
	Load(ctx context.Context, userID string) (*domain.GameSession, error)
	Save(ctx context.Context, userID string, session *domain.GameSession) error
	Clear(ctx context.Context, userID string) error
}
