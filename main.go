package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"hideout-tracker/internal/api"
	"hideout-tracker/internal/catalog"
	"hideout-tracker/internal/db"
	"hideout-tracker/internal/history"
	"hideout-tracker/internal/ingest"
	"hideout-tracker/internal/logger"
	"hideout-tracker/internal/market"
)

var version = "dev"

func main() {
	port := flag.Int("port", 13380, "HTTP server port")
	flag.Parse()

	logger.Banner(version)

	// Open SQLite database
	database, err := db.Open()
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	// Load config from SQLite
	cfg := database.LoadConfig()

	// Load catalog, seeding defaults on first run
	var cat *catalog.Catalog
	persisted, err := database.LoadCatalog()
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to load catalog: %v", err))
		os.Exit(1)
	}
	if persisted == nil {
		cat = catalog.DefaultCatalog()
		logger.Info("CATALOG", fmt.Sprintf("First run, seeded %d default crafts", cat.Count()))
	} else {
		cat = catalog.FromMap(persisted)
	}
	if corrected := cat.NormalizeDurations(); corrected > 0 {
		logger.Warn("CATALOG", fmt.Sprintf("Corrected %d implausible craft durations", corrected))
	}
	if err := database.SaveCatalog(cat.Snapshot()); err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to save catalog: %v", err))
		os.Exit(1)
	}
	logger.Stats("Crafts", cat.Count())

	// Restore history from SQLite
	tracker := history.New(database, cfg.SnapshotRetentionDays)
	snaps, err := database.LoadSnapshots()
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to load snapshots: %v", err))
		os.Exit(1)
	}
	events, err := database.LoadCompletions()
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to load completions: %v", err))
		os.Exit(1)
	}
	tracker.Restore(snaps, events)
	logger.Stats("Snapshots", len(snaps))
	logger.Stats("Completions", len(events))

	timeout := time.Duration(cfg.RequestTimeoutSec) * time.Second
	marketClient := market.NewClient(cfg.MarketAPIURL, timeout)
	ingestor := ingest.New(marketClient, timeout)

	srv := api.NewServer(cfg, cat, tracker, ingestor, marketClient, database)

	// Initial price refresh in the background; manual entry works while it
	// runs, and a failure just leaves the seeded/persisted catalog in place.
	go func() {
		next, count, err := ingestor.Refresh(context.Background())
		if err != nil {
			logger.Warn("INGEST", fmt.Sprintf("Initial refresh failed: %v", err))
			return
		}
		if err := srv.ApplyRefresh(next); err != nil {
			logger.Warn("INGEST", fmt.Sprintf("Failed to apply initial refresh: %v", err))
			return
		}
		logger.Success("INGEST", fmt.Sprintf("Initial refresh loaded %d crafts", count))
	}()

	addr := fmt.Sprintf("127.0.0.1:%d", *port)
	logger.Server(addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Error("Server", fmt.Sprintf("Failed: %v", err))
		os.Exit(1)
	}
}
