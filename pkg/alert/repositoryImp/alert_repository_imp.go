package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"fasal/entities"
	"fasal/pkg/alert"
	"fasal/pkg/alert/repository"
)

type alertRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) repository.AlertRepository {
	return &alertRepo{db: db, log: log}
}

func toRecord(a entities.Alert) (alert.Record, error) {
	rec := alert.Record{
		ID:        int(a.AlertID),
		Severity:  alert.Severity(a.Severity),
		Variable:  alert.Variable(a.Variable),
		Title:     a.Title,
		Summary:   a.Summary,
		Region:    a.Region,
		Timestamp: a.Timestamp.UTC(),
		Sparkline: a.Sparkline,
		BBox:      a.BBox,
	}
	return rec, rec.Validate()
}

func toRow(r alert.Record) entities.Alert {
	return entities.Alert{
		AlertID:   uint(r.ID),
		Severity:  string(r.Severity),
		Variable:  string(r.Variable),
		Title:     r.Title,
		Summary:   r.Summary,
		Region:    r.Region,
		Timestamp: r.Timestamp,
		Sparkline: r.Sparkline,
		BBox:      r.BBox,
	}
}

func (r *alertRepo) List(ctx context.Context) ([]alert.Record, error) {
	var rows []entities.Alert
	if err := r.db.WithContext(ctx).Order("alert_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]alert.Record, 0, len(rows))
	for _, a := range rows {
		rec, err := toRecord(a)
		if err != nil {
			r.log.Warn("skipping stored alert", zap.Uint("alert_id", a.AlertID), zap.Error(err))
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *alertRepo) FindByID(ctx context.Context, id int) (*alert.Record, error) {
	var a entities.Alert
	if err := r.db.WithContext(ctx).First(&a, "alert_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", repository.ErrNotFound, id)
		}
		return nil, err
	}
	rec, err := toRecord(a)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *alertRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&entities.Alert{}).Count(&n).Error
}

func (r *alertRepo) Seed(ctx context.Context, records []alert.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return 0, err
		}
	}
	written := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.Alert{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		rows := make([]entities.Alert, 0, len(records))
		for _, rec := range records {
			rows = append(rows, toRow(rec))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		written = len(rows)
		return nil
	})
	return written, err
}
