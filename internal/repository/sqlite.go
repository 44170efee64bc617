package repository

import (
	"context"
	"fmt"
	"time"

	"coursetally/internal/config"
	"coursetally/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteRepository archives consumed records locally
type SQLiteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository opens the archive database and migrates its schema
func NewSQLiteRepository(cfg *config.SQLiteConfig) (*SQLiteRepository, error) {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.AutoMigrate(&model.VisitLog{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info().Str("path", cfg.Path).Msg("SQLite archive opened")

	return &SQLiteRepository{db: db}, nil
}

// GetDB returns the GORM DB instance
func (r *SQLiteRepository) GetDB() *gorm.DB {
	return r.db
}

// SaveVisitLog archives one consumed record
func (r *SQLiteRepository) SaveVisitLog(ctx context.Context, visit *model.VisitLog) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

// GetVisitLogs retrieves archived records, newest first. An empty
// course selects all courses.
func (r *SQLiteRepository) GetVisitLogs(ctx context.Context, course string, limit int) ([]model.VisitLog, error) {
	var visits []model.VisitLog
	query := r.db.WithContext(ctx).Order("consumed_at DESC")

	if course != "" {
		query = query.Where("course = ?", course)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&visits).Error
	return visits, err
}

// CountVisitLogs returns the total number of archived records
func (r *SQLiteRepository) CountVisitLogs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.VisitLog{}).Count(&count).Error
	return count, err
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
