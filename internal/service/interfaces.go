package service

import (
	"context"

	"coursetally/internal/model"
)

// FeedInterface defines the interface for the record source (for testing)
type FeedInterface interface {
	Next() (*model.Record, error)
	Close() error
}

// VisitStoreInterface defines the interface for the archive store (for testing)
type VisitStoreInterface interface {
	SaveVisitLog(ctx context.Context, visit *model.VisitLog) error
}

// LiveStatsInterface defines the interface for the Redis counter mirror (for testing)
type LiveStatsInterface interface {
	IncrementVisitCount(ctx context.Context, weekday, course string, count int64) (int64, error)
	GetCourseCounts(ctx context.Context, course string) (map[string]int64, error)
}

// StatsServiceInterface defines the interface for stats queries
type StatsServiceInterface interface {
	Snapshot() *model.StatsResponse
	CourseCounts(course string) (map[string]int64, bool)
	LiveCourseCounts(ctx context.Context, course string) (map[string]int64, error)
}
