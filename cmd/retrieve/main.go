package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	kafkaadapter "github.com/gpswatch/notamview/internal/adapter/kafka"
	"github.com/gpswatch/notamview/internal/config"
	"github.com/gpswatch/notamview/internal/ingest"
	"github.com/gpswatch/notamview/internal/observability"
	"github.com/gpswatch/notamview/internal/pipeline"
	"github.com/gpswatch/notamview/internal/store"
)

func main() {
	urlFlag := flag.String("url", "", "notice page URL (default: FAA PilotWeb all-GPS query)")
	useFileFlag := flag.String("use-file", "", "read notice lines from a local file instead of fetching")
	dataDirFlag := flag.String("data-dir", "", "directory for per-day NOTAM files (or set DATA_DIR)")
	intervalFlag := flag.Duration("interval", 0, "sweep repeatedly on this interval; 0 runs a single sweep")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	// Flags win over environment settings.
	if *urlFlag != "" {
		cfg.SourceURL = *urlFlag
	}
	if *dataDirFlag != "" {
		cfg.DataDir = *dataDirFlag
	}
	if *intervalFlag > 0 {
		cfg.FetchInterval = *intervalFlag
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat, "retrieve")
	metrics := observability.NewMetrics()

	st, err := store.New(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open store", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	var fetcher pipeline.SourceFetcher
	if *useFileFlag != "" {
		fetcher = ingest.FileSource{Path: *useFileFlag}
		logger.Info("reading notices from file", "path", *useFileFlag)
	} else {
		fetcher = ingest.NewClient(cfg.SourceURL, cfg.FetchTimeout, logger)
	}

	var publisher pipeline.FeedPublisher
	if cfg.KafkaEnabled {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		publisher = writer
		logger.Info("notam feed enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	}

	p := pipeline.New(fetcher, st, publisher, logger, metrics, cfg.FetchInterval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if err := p.Run(ctx); err != nil {
		logger.Error("retrieval failed", "error", err)
		os.Exit(1)
	}
	logger.Info("retrieval finished", "elapsed", time.Since(start))
}
