package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"coursetally/internal/config"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/rs/zerolog/log"
)

// VisitHandler is the handler for visit messages
type VisitHandler func(ctx context.Context, msg *VisitMessage) error

// Consumer handles message consumption from RocketMQ under a named
// consumer group. Delivery is at-least-once: a handler error triggers
// redelivery, so duplicate counts are possible after a reconnect.
type Consumer struct {
	client  rocketmq.PushConsumer
	topic   string
	group   string
	handler VisitHandler
	started bool
}

// NewConsumer creates a new RocketMQ consumer
func NewConsumer(cfg *config.RocketMQConfig, handler VisitHandler) (*Consumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		consumer.WithConsumerModel(consumer.Clustering),
		consumer.WithGroupName(cfg.Group),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:  c,
		topic:   cfg.Topic,
		group:   cfg.Group,
		handler: handler,
	}, nil
}

// Subscribe subscribes to the topic and starts consuming messages
func (c *Consumer) Subscribe() error {
	if c.started {
		return nil
	}

	err := c.client.Subscribe(c.topic, consumer.MessageSelector{}, func(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
		for _, msg := range msgs {
			var visit VisitMessage
			if err := json.Unmarshal(msg.Body, &visit); err != nil {
				// Malformed messages are skipped, not redelivered
				log.Warn().Err(err).Str("msg_id", msg.MsgId).Msg("Skipping malformed message")
				continue
			}

			log.Debug().
				Str("msg_id", msg.MsgId).
				Str("course", visit.Course).
				Str("date", visit.Date).
				Msg("Processing visit")

			if c.handler != nil {
				if err := c.handler(ctx, &visit); err != nil {
					log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Handler failed")
					return consumer.ConsumeRetryLater, err
				}
			}
		}
		return consumer.ConsumeSuccess, nil
	})

	if err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	if err := c.client.Start(); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	c.started = true
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("RocketMQ consumer started")

	return nil
}

// Close closes the consumer
func (c *Consumer) Close() error {
	if c != nil && c.client != nil {
		return c.client.Shutdown()
	}
	return nil
}
