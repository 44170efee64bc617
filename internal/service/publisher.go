package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"coursetally/internal/config"
	"coursetally/internal/model"
	"coursetally/internal/mq"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PublisherService streams records from the feed to the broker topic
// at a fixed cadence. Publish order follows source row order.
type PublisherService struct {
	feed       FeedInterface
	producer   mq.ProducerInterface
	interval   time.Duration
	maxRetries int
	backoff    time.Duration
	published  int64
}

// NewPublisherService creates a new Publisher Service
func NewPublisherService(feed FeedInterface, producer mq.ProducerInterface, cfg *config.ProducerConfig) *PublisherService {
	return &PublisherService{
		feed:       feed,
		producer:   producer,
		interval:   cfg.Interval,
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.RetryBackoff,
	}
}

// Run publishes records until the feed is exhausted, the context is
// cancelled, or the broker stays unreachable past the retry bound.
func (s *PublisherService) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		record, err := s.feed.Next()
		if errors.Is(err, io.EOF) {
			log.Info().Int64("published", s.published).Msg("Feed exhausted, stopping producer")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read next record: %w", err)
		}

		msg := model.NewVisitMessage(uuid.NewString(), record)
		if err := s.publishWithRetry(ctx, msg); err != nil {
			return err
		}
		s.published++

		log.Info().
			Str("message_id", msg.MessageID).
			Str("course", msg.Course).
			Str("date", msg.Date).
			Int64("count", msg.Count).
			Msg("Published visit")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.interval):
		}
	}
}

// publishWithRetry sends one message, retrying transport errors with a
// doubling backoff up to the configured bound.
func (s *PublisherService) publishWithRetry(ctx context.Context, msg *mq.VisitMessage) error {
	backoff := s.backoff
	var lastErr error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			log.Warn().
				Err(lastErr).
				Int("attempt", attempt).
				Dur("backoff", backoff).
				Msg("Publish failed, retrying")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		if err := s.producer.SendVisit(ctx, msg); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return fmt.Errorf("publish failed after %d retries: %w", s.maxRetries, lastErr)
}

// Published returns the number of records published so far
func (s *PublisherService) Published() int64 {
	return s.published
}
