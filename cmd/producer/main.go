package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"coursetally/internal/config"
	"coursetally/internal/feed"
	"coursetally/internal/mq"
	"coursetally/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Open the CSV feed
	csvFeed, err := feed.NewCSVFeed(cfg.Producer.DataFile, cfg.Producer.Loop)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Producer.DataFile).Msg("Failed to open data file")
	}
	defer csvFeed.Close()

	// Initialize MQ producer
	mqProducer, err := mq.NewProducer(&cfg.RocketMQ)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize RocketMQ producer")
	}
	defer mqProducer.Close()

	publisher := service.NewPublisherService(csvFeed, mqProducer, &cfg.Producer)

	// Cancel the publish loop on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info().Msg("Shutting down producer...")
		cancel()
	}()

	log.Info().
		Str("topic", cfg.RocketMQ.Topic).
		Dur("interval", cfg.Producer.Interval).
		Msg("Starting message production")

	if err := publisher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Producer failed")
	}

	log.Info().
		Int64("published", publisher.Published()).
		Int64("skipped", csvFeed.Skipped()).
		Msg("Producer exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}
