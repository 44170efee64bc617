package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coursetally/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// VisitKeyPrefix is the key prefix for mirrored visit counters
const VisitKeyPrefix = "visits:"

// RedisRepository mirrors running visit totals to Redis. The in-memory
// aggregate stays authoritative; the mirror only survives consumer
// restarts for inspection.
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// IncrementVisitCount increments the mirrored counter for one
// (weekday, course) pair and returns the new total.
func (r *RedisRepository) IncrementVisitCount(ctx context.Context, weekday, course string, count int64) (int64, error) {
	return r.client.IncrBy(ctx, r.visitKey(course, weekday), count).Result()
}

// GetCourseCounts returns the mirrored per-weekday totals for one course
func (r *RedisRepository) GetCourseCounts(ctx context.Context, course string) (map[string]int64, error) {
	pattern := fmt.Sprintf("%s%s:*", VisitKeyPrefix, course)
	counts := make(map[string]int64)

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		count, err := r.client.Get(ctx, key).Int64()
		if err != nil {
			continue
		}
		weekday := key[strings.LastIndex(key, ":")+1:]
		counts[weekday] = count
	}

	return counts, iter.Err()
}

// GetAllCounts returns all mirrored totals keyed by course then weekday
func (r *RedisRepository) GetAllCounts(ctx context.Context) (map[string]map[string]int64, error) {
	pattern := VisitKeyPrefix + "*"
	counts := make(map[string]map[string]int64)

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		count, err := r.client.Get(ctx, key).Int64()
		if err != nil {
			continue
		}

		// Key layout: visits:<course>:<weekday>
		rest := key[len(VisitKeyPrefix):]
		idx := strings.LastIndex(rest, ":")
		if idx <= 0 {
			continue
		}
		course, weekday := rest[:idx], rest[idx+1:]

		if counts[course] == nil {
			counts[course] = make(map[string]int64)
		}
		counts[course][weekday] = count
	}

	return counts, iter.Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// visitKey builds the counter key for a (course, weekday) pair
func (r *RedisRepository) visitKey(course, weekday string) string {
	return fmt.Sprintf("%s%s:%s", VisitKeyPrefix, course, weekday)
}
