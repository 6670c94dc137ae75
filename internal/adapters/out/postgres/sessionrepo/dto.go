// Package sessionrepo persists portal sessions in PostgreSQL, one row per agent.
package sessionrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
)

// SessionDTO is the row stored for one agent.
type SessionDTO struct {
	AgentID   string `gorm:"primaryKey"`
	Token     string `gorm:"not null"`
	UserID    uint64 `gorm:"index"`
	Role      string `gorm:"type:varchar(16)"`
	Email     string
	ExpiresAt *time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for sessions.
func (SessionDTO) TableName() string {
	return "portal_sessions"
}

func fromDomain(agentID string, s session.Session) SessionDTO {
	var expiresAt *time.Time
	if t := s.ExpiresAt(); !t.IsZero() {
		utc := t.UTC()
		expiresAt = &utc
	}

	return SessionDTO{
		AgentID:   agentID,
		Token:     s.Token(),
		UserID:    uint64(s.UserID()),
		Role:      s.Role().String(),
		Email:     s.Email(),
		ExpiresAt: expiresAt,
	}
}

func toDomain(dto SessionDTO) (session.Session, error) {
	identity := session.Identity{
		Token:  dto.Token,
		UserID: kernel.ID(dto.UserID),
		Role:   session.Role(dto.Role),
		Email:  dto.Email,
	}
	if dto.ExpiresAt != nil {
		identity.ExpiresAt = dto.ExpiresAt.UTC()
	}
	return session.New(identity)
}
