package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fasal/entities"
	"fasal/pkg/whatsapp/repository"
)

type connRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ConnectionRepository { return &connRepo{db} }

func (r *connRepo) Find(ctx context.Context, sessionID string) (*entities.Connection, error) {
	var c entities.Connection
	err := r.db.WithContext(ctx).First(&c, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Save upserts by session id. created_at is kept from the first insert.
func (r *connRepo) Save(ctx context.Context, c *entities.Connection) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone", "state", "updated_at"}),
	}).Create(c).Error
}
