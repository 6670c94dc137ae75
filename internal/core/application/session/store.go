// Package session holds the one authenticated session of a user agent. It is the only
// place the token is mutated; every other component reads it through Store.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"logistics/internal/core/domain/model/session"
	"logistics/internal/core/domain/model/toast"
	"logistics/internal/core/ports"
	"logistics/internal/metrics"
	"logistics/internal/pkg/errs"
)

// User-facing outcome messages.
const (
	MsgLoginSucceeded    = "Has iniciado sesión"
	MsgLoginFailed       = "Error de autenticación"
	MsgRegisterFailed    = "No se pudo registrar"
	MsgRegisterSucceeded = "Usuario registrado. Ahora puedes iniciar sesión."
	MsgLoggedOut         = "Sesión cerrada"
	MsgSessionExpired    = "Tu sesión ha expirado. Inicia sesión de nuevo."
	MsgCredentials       = "Correo y contraseña son obligatorios"
)

// Store owns the current session. Reads are cheap and concurrent; login and logout
// serialize on the write lock.
type Store struct {
	auth     ports.AuthGateway
	repo     ports.SessionRepository
	notifier ports.Notifier
	logger   *slog.Logger
	now      func() time.Time
	cleared  func()

	mu      sync.RWMutex
	current session.Session
}

// NewStore creates a store holding an empty session. Call Hydrate to restore a
// persisted one.
func NewStore(
	auth ports.AuthGateway,
	repo ports.SessionRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) (*Store, error) {
	if auth == nil {
		return nil, errs.NewValueIsRequiredError("auth")
	}
	if repo == nil {
		return nil, errs.NewValueIsRequiredError("repo")
	}
	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("notifier")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Store{
		auth:     auth,
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "session_store"),
		now:      time.Now,
		current:  session.Empty(),
	}, nil
}

// SetOnCleared registers fn to run after the current session is dropped or replaced:
// on logout, on invalidation and on a login over an active session.
func (s *Store) SetOnCleared(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared = fn
}

func (s *Store) fireCleared() {
	s.mu.RLock()
	fn := s.cleared
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// SetClock replaces time.Now. Meant for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Hydrate restores the persisted session. An absent record leaves the session empty;
// an expired one is cleared from the repository.
func (s *Store) Hydrate(ctx context.Context) error {
	persisted, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load persisted session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if persisted.IsExpired(s.now()) {
		s.logger.Info("persisted session expired", "user_id", persisted.UserID())
		s.current = session.Empty()
		if err = s.repo.Clear(ctx); err != nil {
			s.logger.Warn("failed to clear expired session", "error", err)
		}
		return nil
	}

	s.current = persisted
	if persisted.IsAuthenticated() {
		s.logger.Info("session restored", "user_id", persisted.UserID(), "role", persisted.Role())
	}
	return nil
}

// Current returns a snapshot of the session.
func (s *Store) Current() session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsAuthenticated is derived from the presence of a token.
func (s *Store) IsAuthenticated() bool {
	return s.Current().IsAuthenticated()
}

// Token returns the bearer token, or "" when logged out.
func (s *Store) Token() string {
	return s.Current().Token()
}

// Login authenticates against the backend. The new session is persisted before it
// becomes current. Exactly one toast reports the outcome.
func (s *Store) Login(ctx context.Context, email, password string) (session.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return session.Session{}, s.failLogin(errs.NewAuthError(MsgCredentials))
	}

	identity, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		return session.Session{}, s.failLogin(errs.NewAuthErrorWithCause(err, MsgLoginFailed))
	}
	if identity.Email == "" {
		identity.Email = email
	}

	next, err := session.New(identity)
	if err != nil {
		return session.Session{}, s.failLogin(errs.NewAuthErrorWithCause(err, MsgLoginFailed))
	}

	s.mu.Lock()
	if err = s.repo.Save(ctx, next); err != nil {
		s.mu.Unlock()
		s.logger.Error("failed to persist session", "user_id", next.UserID(), "error", err)
		return session.Session{}, s.failLogin(errs.NewAuthErrorWithCause(err, MsgLoginFailed))
	}
	replaced := s.current.IsAuthenticated()
	s.current = next
	s.mu.Unlock()

	if replaced {
		s.fireCleared()
	}

	metrics.SessionEventsTotal.WithLabelValues("login", metrics.OutcomeSuccess).Inc()
	s.logger.Info("logged in", "user_id", next.UserID(), "role", next.Role())
	s.notifier.Notify(toast.Success, MsgLoginSucceeded)

	return next, nil
}

func (s *Store) failLogin(err *errs.AuthError) error {
	metrics.SessionEventsTotal.WithLabelValues("login", metrics.OutcomeFailure).Inc()
	s.logger.Warn("login failed", "error", err)
	s.notifier.Notify(toast.Error, err.Message)
	return err
}

// Register creates a client account. It never authenticates; the caller must log in.
func (s *Store) Register(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return s.failRegister(errs.NewValidationError(MsgCredentials))
	}

	if err := s.auth.Register(ctx, email, password); err != nil {
		return s.failRegister(errs.NewValidationErrorWithCause(err, MsgRegisterFailed))
	}

	metrics.SessionEventsTotal.WithLabelValues("register", metrics.OutcomeSuccess).Inc()
	s.logger.Info("user registered", "email", email)
	s.notifier.Notify(toast.Success, MsgRegisterSucceeded)
	return nil
}

func (s *Store) failRegister(err *errs.ValidationError) error {
	metrics.SessionEventsTotal.WithLabelValues("register", metrics.OutcomeFailure).Inc()
	s.logger.Warn("register failed", "error", err)
	s.notifier.Notify(toast.Error, err.Message)
	return err
}

// Logout clears the session in memory and in the repository, whether or not one was
// active. A repository failure is logged and returned; memory is cleared regardless.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	previous := s.current
	s.current = session.Empty()
	err := s.repo.Clear(ctx)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("failed to clear persisted session", "error", err)
		err = fmt.Errorf("clear persisted session: %w", err)
	}

	s.fireCleared()

	metrics.SessionEventsTotal.WithLabelValues("logout", metrics.OutcomeSuccess).Inc()
	if previous.IsAuthenticated() {
		s.logger.Info("logged out", "user_id", previous.UserID())
	}
	s.notifier.Notify(toast.Info, MsgLoggedOut)

	return err
}

// Invalidate drops a session the backend no longer honours or whose token expired.
// It is a no-op when no session is active.
func (s *Store) Invalidate(ctx context.Context, reason string) error {
	s.mu.Lock()
	previous := s.current
	if !previous.IsAuthenticated() {
		s.mu.Unlock()
		return nil
	}
	s.current = session.Empty()
	err := s.repo.Clear(ctx)
	s.mu.Unlock()

	s.fireCleared()

	metrics.SessionEventsTotal.WithLabelValues("invalidate", metrics.OutcomeSuccess).Inc()
	s.logger.Info("session invalidated", "user_id", previous.UserID(), "reason", reason)
	s.notifier.Notify(toast.Warning, MsgSessionExpired)

	if err != nil {
		s.logger.Error("failed to clear persisted session", "error", err)
		return fmt.Errorf("clear persisted session: %w", err)
	}
	return nil
}

// ExpireIfNeeded invalidates the session when its token has expired at now.
// It reports whether an invalidation happened.
func (s *Store) ExpireIfNeeded(ctx context.Context) (bool, error) {
	s.mu.RLock()
	expired := s.current.IsExpired(s.now())
	s.mu.RUnlock()

	if !expired {
		return false, nil
	}
	return true, s.Invalidate(ctx, "token expired")
}
