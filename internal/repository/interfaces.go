package repository

import (
	"context"

	"coursetally/internal/model"
)

// SQLiteRepositoryInterface defines the interface for archive operations
type SQLiteRepositoryInterface interface {
	SaveVisitLog(ctx context.Context, visit *model.VisitLog) error
	GetVisitLogs(ctx context.Context, course string, limit int) ([]model.VisitLog, error)
	CountVisitLogs(ctx context.Context) (int64, error)
	Close() error
}

// RedisRepositoryInterface defines the interface for the live counter mirror
type RedisRepositoryInterface interface {
	IncrementVisitCount(ctx context.Context, weekday, course string, count int64) (int64, error)
	GetCourseCounts(ctx context.Context, course string) (map[string]int64, error)
	GetAllCounts(ctx context.Context) (map[string]map[string]int64, error)
	Close() error
}
