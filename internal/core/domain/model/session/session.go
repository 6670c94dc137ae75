package session

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Session is the authenticated identity of one user agent. The zero value is the
// cleared session.
type Session struct {
	token     string
	userID    kernel.ID
	role      Role
	email     string
	expiresAt time.Time
}

// Identity is what a successful authentication yields.
type Identity struct {
	Token     string
	UserID    kernel.ID
	Role      Role
	Email     string
	ExpiresAt time.Time
}

// New builds an authenticated session. A zero ExpiresAt means the token carries no expiry.
func New(identity Identity) (Session, error) {
	var tokenErr error
	if identity.Token == "" {
		tokenErr = errs.NewValueIsRequiredError("token")
	}

	if err := errors.Join(
		tokenErr,
		identity.UserID.Validate(),
		identity.Role.Validate(),
	); err != nil {
		return Session{}, err
	}

	return Session{
		token:     identity.Token,
		userID:    identity.UserID,
		role:      identity.Role,
		email:     identity.Email,
		expiresAt: identity.ExpiresAt,
	}, nil
}

// Empty returns the cleared session.
func Empty() Session {
	return Session{}
}

// IsAuthenticated is derived from the token and never stored.
func (s Session) IsAuthenticated() bool {
	return s.token != ""
}

func (s Session) Token() string {
	return s.token
}

func (s Session) UserID() kernel.ID {
	return s.userID
}

func (s Session) Role() Role {
	return s.role
}

func (s Session) Email() string {
	return s.email
}

func (s Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// IsExpired reports whether the token expiry has passed at now.
func (s Session) IsExpired(now time.Time) bool {
	return s.IsAuthenticated() && !s.expiresAt.IsZero() && !now.Before(s.expiresAt)
}

// Identity returns the data needed to persist and later restore the session.
func (s Session) Identity() Identity {
	return Identity{
		Token:     s.token,
		UserID:    s.userID,
		Role:      s.role,
		Email:     s.email,
		ExpiresAt: s.expiresAt,
	}
}
