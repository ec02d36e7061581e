package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/user/champion-scraper/internal/browser"
	"github.com/user/champion-scraper/internal/config"
	"github.com/user/champion-scraper/internal/domain"
	"github.com/user/champion-scraper/internal/monitoring"
	"github.com/user/champion-scraper/internal/scraper"
	"github.com/user/champion-scraper/internal/storage"
	"go.uber.org/zap"
)

func main() {
	// Initialize structured logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}

	// Initialize Storage Layer
	store, err := storage.NewObjectStore(
		cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
		cfg.MinioBucket, cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Fatal("failed to create object store client", zap.Error(err))
	}

	metrics := monitoring.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Scrape
	session, err := browser.NewSession(
		time.Duration(cfg.NavTimeoutSeconds)*time.Second, cfg.NavRetries, logger,
	)
	if err != nil {
		logger.Fatal("failed to launch browser", zap.Error(err))
	}
	defer session.Close()

	start := time.Now()
	champions, err := scraper.New(cfg, session, metrics, logger).Run(ctx)
	session.Close()
	metrics.ObserveRunDuration(time.Since(start))
	if err != nil {
		pushMetrics(cfg, metrics, logger)
		logger.Fatal("scrape failed", zap.Error(err))
	}

	// Serialize and upload
	payload, err := domain.Marshal(champions)
	if err != nil {
		logger.Fatal("could not serialize champions", zap.Error(err))
	}

	if err := store.EnsureBucket(ctx); err != nil {
		metrics.IncErrorsTotal("upload_failed")
		pushMetrics(cfg, metrics, logger)
		logger.Fatal("could not ensure bucket", zap.Error(err))
	}
	if err := store.PutJSON(ctx, cfg.ObjectName, payload); err != nil {
		metrics.IncErrorsTotal("upload_failed")
		pushMetrics(cfg, metrics, logger)
		logger.Fatal("upload failed", zap.Error(err))
	}

	pushMetrics(cfg, metrics, logger)
	logger.Info("scrape complete",
		zap.Int("champions", len(champions)),
		zap.Int("payload_bytes", len(payload)),
		zap.String("bucket", cfg.MinioBucket),
		zap.String("object", cfg.ObjectName))
}

// pushMetrics delivers run metrics when a Pushgateway is configured.
// Push failure never changes the process outcome.
func pushMetrics(cfg *config.Config, m *monitoring.Metrics, logger *zap.Logger) {
	if cfg.PushgatewayURL == "" {
		return
	}
	if err := m.Push(cfg.PushgatewayURL, cfg.PushgatewayJob); err != nil {
		logger.Warn("failed to push metrics", zap.Error(err))
	}
}
