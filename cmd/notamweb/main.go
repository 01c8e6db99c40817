package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/gpswatch/notamview/internal/adapter/httpapi"
	kafkaadapter "github.com/gpswatch/notamview/internal/adapter/kafka"
	"github.com/gpswatch/notamview/internal/config"
	"github.com/gpswatch/notamview/internal/ingest"
	"github.com/gpswatch/notamview/internal/observability"
	"github.com/gpswatch/notamview/internal/pipeline"
	"github.com/gpswatch/notamview/internal/store"
)

func main() {
	// Load .env file. godotenv does not override existing env vars, so
	// deployment environments always win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat, "notamweb")
	metrics := observability.NewMetrics()

	st, err := store.New(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open store", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// When a fetch interval is configured the web server also runs the
	// retrieval pipeline, and readiness tracks the first completed sweep.
	var ready httpapi.ReadinessChecker
	var closers []func() error
	if cfg.FetchInterval > 0 {
		var publisher pipeline.FeedPublisher
		if cfg.KafkaEnabled {
			writer := kafkaadapter.NewWriter(cfg, logger)
			publisher = writer
			closers = append(closers, writer.Close)
			logger.Info("notam feed enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
		} else {
			logger.Info("notam feed disabled")
		}

		client := ingest.NewClient(cfg.SourceURL, cfg.FetchTimeout, logger)
		p := pipeline.New(client, st, publisher, logger, metrics, cfg.FetchInterval)
		ready = p

		go func() {
			if err := p.Run(ctx); err != nil {
				logger.Error("pipeline error", "error", err)
			}
		}()
	}

	srv := httpapi.NewServer(cfg.HTTPAddr, st, ready, logger, metrics)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
