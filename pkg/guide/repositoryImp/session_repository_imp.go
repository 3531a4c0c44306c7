package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fasal/entities"
	"fasal/pkg/guide/repository"
)

type sessionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SessionRepository { return &sessionRepo{db} }

func (r *sessionRepo) Find(ctx context.Context, sessionID string) (*entities.GuideSession, error) {
	var s entities.GuideSession
	if err := r.db.WithContext(ctx).First(&s, "session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, sessionID)
		}
		return nil, err
	}
	return &s, nil
}

// Save upserts by session id. created_at is kept from the first insert.
func (r *sessionRepo) Save(ctx context.Context, s *entities.GuideSession) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"guide_id", "open_steps", "updated_at"}),
	}).Create(s).Error
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Delete(&entities.GuideSession{}, "session_id = ?", sessionID).Error
}
