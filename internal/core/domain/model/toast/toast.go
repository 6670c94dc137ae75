// Package toast models the short user-facing messages that report the outcome of a
// portal operation.
package toast

import (
	"fmt"
	"time"

	"logistics/internal/pkg/errs"
)

// Kind selects how a toast is presented.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
	Warning Kind = "warning"
)

// Validate accepts the four presentation kinds.
func (k Kind) Validate() error {
	switch k {
	case Success, Error, Info, Warning:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a toast kind", string(k)))
	}
}

// ID identifies a toast within its queue.
type ID uint64

// Toast is an immutable notification. A zero TTL keeps it until it is dismissed.
type Toast struct {
	ID        ID
	Kind      Kind
	Message   string
	TTL       time.Duration
	CreatedAt time.Time
}

// IsSticky reports whether the toast persists until dismissed.
func (t Toast) IsSticky() bool {
	return t.TTL == 0
}

// ExpiresAt is meaningful only for non-sticky toasts.
func (t Toast) ExpiresAt() time.Time {
	return t.CreatedAt.Add(t.TTL)
}

// IsExpired reports whether a non-sticky toast has outlived its TTL at now.
func (t Toast) IsExpired(now time.Time) bool {
	return !t.IsSticky() && !now.Before(t.ExpiresAt())
}
