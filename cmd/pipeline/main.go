package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pulsehq/meeting-relevance/internal/adapter/handler"
	"github.com/pulsehq/meeting-relevance/internal/adapter/repository"
	"github.com/pulsehq/meeting-relevance/internal/infrastructure/cache"
	"github.com/pulsehq/meeting-relevance/internal/infrastructure/database"
	"github.com/pulsehq/meeting-relevance/internal/usecase/notify"
	"github.com/pulsehq/meeting-relevance/internal/usecase/pipeline"
	pkgai "github.com/pulsehq/meeting-relevance/pkg/ai"
	"github.com/pulsehq/meeting-relevance/pkg/config"
	"github.com/pulsehq/meeting-relevance/pkg/fireflies"
	pkglogger "github.com/pulsehq/meeting-relevance/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	logger.Info("connecting to database")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Initialize transcript cache: Redis when configured, in-memory
	// otherwise. Cache loss is never fatal to the pipeline.
	var transcriptCache pipeline.Cache
	if cfg.RedisEnabled() {
		logger.Info("connecting to redis")
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			logger.Warn("redis unavailable, falling back to in-memory cache", zap.Error(err))
			memStore := cache.NewMemoryStore()
			defer memStore.Close()
			transcriptCache = memStore
		} else {
			defer redisStore.Close()
			transcriptCache = redisStore
		}
	} else {
		memStore := cache.NewMemoryStore()
		defer memStore.Close()
		transcriptCache = memStore
	}

	// Initialize repositories
	goalRepo := repository.NewGoalRepository(db)
	integrationRepo := repository.NewIntegrationRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)

	// Initialize source, classifier and notifier
	ffClient := fireflies.NewClient(cfg.Fireflies.URI)
	source := pipeline.NewCachedSource(
		pipeline.NewLiveSource(ffClient),
		transcriptCache,
		cfg.Fireflies.CacheTTL,
		logger,
	)

	llmClient := pkgai.NewOpenAIClient(&cfg.OpenAI)
	classifier := pipeline.NewClassifier(llmClient, logger)

	var notifier notify.Notifier
	if cfg.Notifier.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Notifier.WebhookURL, cfg.Notifier.Secret, logger)
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	service := pipeline.NewService(
		goalRepo,
		integrationRepo,
		meetingRepo,
		source,
		classifier,
		notifier,
		&cfg.Pipeline,
		logger,
	)

	// Admin surface
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())

	pipelineHandler := handler.NewPipelineHandler(service, meetingRepo, logger)
	handler.NewRouter(cfg, pipelineHandler).Setup(e)

	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("admin server failed", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Run once immediately, then on the configured interval (0 = one-shot).
	runOnce(ctx, service, logger)

	done := make(chan struct{})
	if cfg.Pipeline.Interval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Pipeline.Interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					runOnce(ctx, service, logger)
				case <-ctx.Done():
					close(done)
					return
				}
			}
		}()
	} else {
		close(done)
	}

	// Wait for interrupt signal; a one-shot run still keeps the admin
	// surface up until interrupted.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()
	<-done

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("admin server shutdown failed", zap.Error(err))
	}
}

func runOnce(ctx context.Context, service pipeline.Service, logger *zap.Logger) {
	if _, err := service.Run(ctx); err != nil {
		logger.Error("pipeline run aborted", zap.Error(err))
	}
}
