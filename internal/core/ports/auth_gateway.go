// Package ports defines the contracts between the portal core and the outside world:
// the logistics backend it drives and the storage that keeps a session alive across
// restarts. Adapters implement them; application services depend only on them.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/session"
)

// AuthGateway authenticates users against the backend.
type AuthGateway interface {
	// Authenticate exchanges credentials for a token and the identity encoded in it.
	// A rejection is reported as *errs.BackendError carrying the backend's text.
	Authenticate(ctx context.Context, email, password string) (session.Identity, error)

	// Register creates a client account. It never authenticates.
	Register(ctx context.Context, email, password string) error
}
