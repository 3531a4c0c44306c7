package database

import (
	"context"
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fasal/entities"
	"fasal/pkg/alert"
	alertrepo "fasal/pkg/alert/repository"
)

const MemoryDSN = ":memory:"

// OpenSQLite opens the database and migrates every table the service owns.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql db: %w", err)
	}
	if path == MemoryDSN {
		// each connection to :memory: is a separate database
		sqlDB.SetMaxOpenConns(1)
	} else if err := db.Exec(`PRAGMA busy_timeout = 5000`).Error; err != nil {
		return nil, fmt.Errorf("busy_timeout: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Alert{},
		&entities.GuideSession{},
		&entities.Connection{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// SeedAlerts loads the sample alerts into an empty alert table.
func SeedAlerts(ctx context.Context, r alertrepo.AlertRepository, log *zap.Logger) error {
	n, err := r.Seed(ctx, alert.SampleRecords())
	if err != nil {
		return fmt.Errorf("seed alerts: %w", err)
	}
	if n > 0 {
		log.Info("seeded alerts", zap.Int("count", n))
	}
	return nil
}
