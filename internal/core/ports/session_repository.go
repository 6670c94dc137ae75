package ports

import (
	"context"

	"logistics/internal/core/domain/model/session"
)

// SessionRepository persists the one session of a user agent across restarts.
// Token and identity are the only state that survives a restart.
type SessionRepository interface {
	// Load returns the persisted session, or a zero session when none is stored.
	Load(ctx context.Context) (session.Session, error)

	// Save replaces the persisted session.
	Save(ctx context.Context, s session.Session) error

	// Clear removes the persisted session. Clearing an absent session is not an error.
	Clear(ctx context.Context) error
}
