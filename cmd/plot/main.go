package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/gpswatch/notamview/internal/config"
	"github.com/gpswatch/notamview/internal/domain"
	"github.com/gpswatch/notamview/internal/observability"
	"github.com/gpswatch/notamview/internal/render"
	"github.com/gpswatch/notamview/internal/store"
)

func main() {
	dayFlag := flag.String("day", "", "day to plot, formatted YYYY-MM-DD (default: today, UTC)")
	dataDirFlag := flag.String("data-dir", "", "directory for per-day NOTAM files (or set DATA_DIR)")
	outFlag := flag.String("out", "", "output file for the GeoJSON map (default: stdout)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *dataDirFlag != "" {
		cfg.DataDir = *dataDirFlag
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat, "plot")

	day := *dayFlag
	if day == "" {
		day = domain.UTCToday()
	}

	st, err := store.New(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open store", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	records, err := st.Load(day)
	if err != nil {
		logger.Error("failed to load records", "day", day, "error", err)
		os.Exit(1)
	}

	set := domain.BuildRenderSet(records)
	for _, diag := range set.Errors {
		fmt.Fprintln(os.Stderr, diag)
	}

	out := os.Stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			logger.Error("failed to create output file", "path", *outFlag, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(render.GeoJSON(set)); err != nil {
		logger.Error("failed to write geojson", "error", err)
		os.Exit(1)
	}

	logger.Info("plot complete", "day", day, "notams", len(set.Points), "errors", len(set.Errors))
}
