package file

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
)

type sessionDTO struct {
	Token     string    `json:"token"`
	UserID    uint64    `json:"user_id"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

func sessionToDTO(s session.Session) sessionDTO {
	return sessionDTO{
		Token:     s.Token(),
		UserID:    uint64(s.UserID()),
		Role:      s.Role().String(),
		Email:     s.Email(),
		ExpiresAt: s.ExpiresAt(),
	}
}

func (d sessionDTO) toDomain() (session.Session, error) {
	return session.New(session.Identity{
		Token:     d.Token,
		UserID:    kernel.ID(d.UserID),
		Role:      session.Role(d.Role),
		Email:     d.Email,
		ExpiresAt: d.ExpiresAt,
	})
}
