// Package redis persists the portal session in Redis, one key per agent.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

var _ ports.SessionRepository = (*SessionRepository)(nil)

const defaultPrefix = "portal:session:"

type sessionDTO struct {
	Token     string    `json:"token"`
	UserID    uint64    `json:"user_id"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// SessionRepository stores the session of one agent under <prefix><agentID>. The key
// expires together with the token.
type SessionRepository struct {
	client  *goredis.Client
	prefix  string
	agentID string
	now     func() time.Time
}

type Option func(*SessionRepository)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(r *SessionRepository) {
		r.prefix = prefix
	}
}

// WithClock replaces time.Now when computing key expiry.
func WithClock(now func() time.Time) Option {
	return func(r *SessionRepository) {
		r.now = now
	}
}

// New connects to the Redis server at address.
func New(address, password string, db int, agentID string, opts ...Option) (*SessionRepository, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, agentID, opts...)
}

// NewFromClient wraps an existing client.
func NewFromClient(client *goredis.Client, agentID string, opts ...Option) (*SessionRepository, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if agentID == "" {
		return nil, errs.NewValueIsRequiredError("agentID")
	}

	r := &SessionRepository{
		client:  client,
		prefix:  defaultPrefix,
		agentID: agentID,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *SessionRepository) key() string {
	return r.prefix + r.agentID
}

// Load returns the stored session, or an empty one when the key is absent.
func (r *SessionRepository) Load(ctx context.Context) (session.Session, error) {
	val, err := r.client.Get(ctx, r.key()).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return session.Empty(), nil
		}
		return session.Empty(), fmt.Errorf("get session from redis: %w", err)
	}

	var dto sessionDTO
	if err = json.Unmarshal(val, &dto); err != nil {
		return session.Empty(), fmt.Errorf("decode session: %w", err)
	}
	return session.New(session.Identity{
		Token:     dto.Token,
		UserID:    kernel.ID(dto.UserID),
		Role:      session.Role(dto.Role),
		Email:     dto.Email,
		ExpiresAt: dto.ExpiresAt,
	})
}

// Save replaces the stored session. Saving an already expired session clears it.
func (r *SessionRepository) Save(ctx context.Context, s session.Session) error {
	if !s.IsAuthenticated() || s.IsExpired(r.now()) {
		return r.Clear(ctx)
	}

	data, err := json.Marshal(sessionDTO{
		Token:     s.Token(),
		UserID:    uint64(s.UserID()),
		Role:      s.Role().String(),
		Email:     s.Email(),
		ExpiresAt: s.ExpiresAt(),
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	var ttl time.Duration
	if !s.ExpiresAt().IsZero() {
		ttl = s.ExpiresAt().Sub(r.now())
	}

	if err = r.client.Set(ctx, r.key(), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session to redis: %w", err)
	}
	return nil
}

// Clear deletes the key.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key()).Err(); err != nil {
		return fmt.Errorf("delete session from redis: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (r *SessionRepository) Close() error {
	return r.client.Close()
}
