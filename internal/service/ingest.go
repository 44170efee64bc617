package service

import (
	"context"
	"errors"
	"time"

	"coursetally/internal/aggregate"
	"coursetally/internal/model"
	"coursetally/internal/mq"
	"coursetally/internal/render"

	"github.com/rs/zerolog/log"
)

// ErrLiveStatsDisabled is returned when the Redis mirror is not configured
var ErrLiveStatsDisabled = errors.New("live stats mirror is disabled")

// IngestService owns the consumer-side aggregate. Each consumed
// message increments the in-memory tally, is archived to SQLite, and
// mirrored to Redis when the mirror is enabled. The tally is the
// authoritative source for the stats API and the rendered chart.
type IngestService struct {
	tally      *aggregate.Tally
	store      VisitStoreInterface
	live       LiveStatsInterface
	renderPath string
}

// NewIngestService creates a new Ingest Service. store and live may be
// nil to disable archiving or mirroring.
func NewIngestService(store VisitStoreInterface, live LiveStatsInterface, renderPath string) *IngestService {
	return &IngestService{
		tally:      aggregate.NewTally(),
		store:      store,
		live:       live,
		renderPath: renderPath,
	}
}

// HandleVisit ingests one consumed message. Malformed messages are
// skipped with a warning and never redelivered. Archive and mirror
// failures are logged but do not fail the message: the tally has
// already counted it, and a redelivery would double-count.
func (s *IngestService) HandleVisit(ctx context.Context, msg *mq.VisitMessage) error {
	record, err := msg.ToRecord()
	if err != nil {
		log.Warn().Err(err).Str("message_id", msg.MessageID).Msg("Skipping invalid message")
		return nil
	}

	s.tally.Add(record)

	log.Info().
		Str("message_id", msg.MessageID).
		Str("weekday", record.Weekday().String()).
		Str("course", record.Course).
		Int64("count", s.tally.Get(record.Weekday(), record.Course)).
		Msg("Visit ingested")

	if s.store != nil {
		if err := s.store.SaveVisitLog(ctx, model.NewVisitLog(msg, record)); err != nil {
			log.Error().Err(err).Str("message_id", msg.MessageID).Msg("Failed to archive visit")
		}
	}

	if s.live != nil {
		if _, err := s.live.IncrementVisitCount(ctx, record.Weekday().String(), record.Course, record.Count); err != nil {
			log.Error().Err(err).Str("course", record.Course).Msg("Failed to mirror visit count")
		}
	}

	return nil
}

// Snapshot returns a copy of the current aggregate
func (s *IngestService) Snapshot() *model.StatsResponse {
	return s.tally.Snapshot()
}

// CourseCounts returns per-weekday counts for one course from the
// in-memory aggregate.
func (s *IngestService) CourseCounts(course string) (map[string]int64, bool) {
	counts, ok := s.tally.CourseCounts(course)
	if !ok {
		return nil, false
	}

	byDay := make(map[string]int64, len(counts))
	for i, day := range aggregate.WeekdayOrder {
		if counts[i] > 0 {
			byDay[day.String()] = counts[i]
		}
	}

	return byDay, true
}

// LiveCourseCounts returns the mirrored per-weekday counts for one course
func (s *IngestService) LiveCourseCounts(ctx context.Context, course string) (map[string]int64, error) {
	if s.live == nil {
		return nil, ErrLiveStatsDisabled
	}
	return s.live.GetCourseCounts(ctx, course)
}

// RenderNow renders the current aggregate as a histogram image
func (s *IngestService) RenderNow() error {
	courses := s.tally.Courses()
	countsByCourse := make([][]int64, len(courses))
	for i, course := range courses {
		counts, _ := s.tally.CourseCounts(course)
		countsByCourse[i] = counts
	}

	if err := render.Histogram(s.renderPath, courses, countsByCourse); err != nil {
		if errors.Is(err, render.ErrNoData) {
			log.Warn().Msg("No data available for plotting yet")
			return nil
		}
		return err
	}

	log.Info().Str("path", s.renderPath).Int("courses", len(courses)).Msg("Histogram rendered")

	return nil
}

// RunRenderLoop re-renders the histogram on a timer until the context
// is cancelled. The caller is expected to render once more on shutdown.
func (s *IngestService) RunRenderLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.RenderNow(); err != nil {
				log.Error().Err(err).Msg("Render failed")
			}
		}
	}
}
