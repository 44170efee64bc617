package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursetally/internal/config"
	"coursetally/internal/handler"
	"coursetally/internal/mq"
	"coursetally/internal/repository"
	"coursetally/internal/service"
	"coursetally/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Course Tally Stats API
// @version 1.0
// @description Live visit aggregate of the course attendance consumer

// @host localhost:8081
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Open the visit archive
	sqliteRepo, err := repository.NewSQLiteRepository(&cfg.Database.SQLite)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open visit archive")
	}
	defer sqliteRepo.Close()

	// Live counter mirror (optional, enabled by database.redis.addr)
	var live service.LiveStatsInterface
	if cfg.Database.Redis.Addr != "" {
		redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
		defer redisRepo.Close()
		live = redisRepo
	}

	ingestSvc := service.NewIngestService(sqliteRepo, live, cfg.Consumer.RenderPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Subscribe, retrying at a fixed interval until the broker is reachable
	mqConsumer, err := mq.NewConsumer(&cfg.RocketMQ, ingestSvc.HandleVisit)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize RocketMQ consumer")
	}
	defer mqConsumer.Close()

	go func() {
		for {
			err := mqConsumer.Subscribe()
			if err == nil {
				return
			}
			log.Warn().
				Err(err).
				Dur("retry_in", cfg.Consumer.ConnectRetryInterval).
				Msg("Broker unreachable, retrying")

			select {
			case <-ctx.Done():
				return
			case <-time.After(cfg.Consumer.ConnectRetryInterval):
			}
		}
	}()

	// Re-render the histogram on a timer
	go ingestSvc.RunRenderLoop(ctx, cfg.Consumer.RenderInterval)

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	// API v1 routes
	statsHandler := handler.NewStatsHandler(ingestSvc)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/stats", statsHandler.GetStats)
		v1.GET("/stats/:course", statsHandler.GetCourseStats)
		v1.GET("/live/:course", statsHandler.GetLiveCourseStats)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info().Msgf("Starting stats server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start stats server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down consumer...")
	cancel()

	// One final render so the chart reflects everything consumed
	if err := ingestSvc.RenderNow(); err != nil {
		log.Error().Err(err).Msg("Final render failed")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Consumer exited")
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
