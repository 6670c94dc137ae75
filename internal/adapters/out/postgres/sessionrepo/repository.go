package sessionrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/session"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.SessionRepository = (*GormSessionRepository)(nil)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	agentID string
}

// NewGormSessionRepository creates a repository for the session of agentID.
func NewGormSessionRepository(db *gorm.DB, agentID string) (*GormSessionRepository, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	if agentID == "" {
		return nil, errs.NewValueIsRequiredError("agentID")
	}
	return &GormSessionRepository{db: db, agentID: agentID}, nil
}

// Migrate creates or updates the sessions table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&SessionDTO{})
}

// Load retrieves the agent's session. A missing row yields an empty session.
func (r *GormSessionRepository) Load(ctx context.Context) (session.Session, error) {
	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "agent_id = ?", r.agentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.Empty(), nil
		}
		return session.Empty(), err
	}
	return toDomain(dto)
}

// Save upserts the agent's row. Saving an empty session deletes it.
func (r *GormSessionRepository) Save(ctx context.Context, s session.Session) error {
	if !s.IsAuthenticated() {
		return r.Clear(ctx)
	}

	dto := fromDomain(r.agentID, s)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "agent_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// Clear deletes the agent's row.
func (r *GormSessionRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("agent_id = ?", r.agentID).Delete(&SessionDTO{}).Error
}
