// Command export renders the leaderboards, season history and every team
// page into EXPORT_DIR as static JSON files.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/league-history/internal/app"
	"github.com/riskibarqy/league-history/internal/config"
	"github.com/riskibarqy/league-history/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	flag.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory holding teams.json and leagueHistory.json")
	flag.StringVar(&cfg.ExportDir, "out", cfg.ExportDir, "directory the JSON files are written to")
	flag.IntVar(&cfg.ExportWorkers, "workers", cfg.ExportWorkers, "concurrent team page renders")
	flag.Parse()

	logger := logging.New(logging.Options{Format: logging.FormatConsole, Level: cfg.LogLevel, Output: os.Stderr})
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	// Every page is rendered exactly once.
	cfg.CacheEnabled = false

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exporter, err := app.NewExporter(ctx, cfg, logger)
	if err != nil {
		logger.Error("build exporter", "error", err)
		os.Exit(1)
	}

	result, err := exporter.Export(ctx)
	if err != nil {
		logger.Error("export failed", "error", err, "written", len(result.Files))
		os.Exit(1)
	}

	logger.Info("export written", "dir", cfg.ExportDir, "files", len(result.Files))
}
