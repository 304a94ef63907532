// Package main provides the unified worker command that fetches gist
// submissions, runs them through the ingestion pipeline and stores the
// canonical records.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"qsbench/internal/config"
	"qsbench/internal/gist"
	"qsbench/internal/logger"
	"qsbench/internal/models"
	"qsbench/internal/pipeline"
	"qsbench/internal/store"
)

func main() {
	configPath := flag.String("config", "./configs/worker.yaml", "Path to worker config")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	secrets, err := config.LoadSecrets()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to load secrets: %v", err))
		os.Exit(1)
	}

	log.Info("🚀 Starting benchmark ingestion worker")
	log.Info(fmt.Sprintf("📍 Source: gist %s", cfg.Source.GistID))
	log.Info(fmt.Sprintf("🎯 Target: %s", cfg.Storage.Path))

	// 1. Ingestion
	// ------------
	log.Info("Phase 1: Ingestion (fetching gist comments)...")

	startTime := time.Now()

	client := gist.NewClientWithConfig(&cfg.Source, &cfg.Retry)
	if secrets.GitHubToken != "" {
		client.SetToken(secrets.GitHubToken)
	}

	subs, err := client.FetchSubmissions()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Fetch failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Fetched %d submissions in %v", len(subs), time.Since(startTime)))

	// 2. Processing
	// -------------
	log.Info("Phase 2: Processing (extraction, normalization, classification)...")

	processStart := time.Now()

	p := pipeline.NewWithDeps(
		pipeline.NewTableExtractor(),
		pipeline.NewFieldNormalizer(),
		pipeline.NewCPUClassifier(),
		pipeline.NewQualityFlaggerWithThresholds(cfg.Quality.MinPlausibleWatts, cfg.Quality.MaxFPSPerWatt),
	)

	var (
		records []models.BenchmarkRecord
		flagged int
	)

	for _, sub := range subs {
		recs := p.Process(sub)
		for i := range recs {
			if len(recs[i].DataQualityFlags) > 0 {
				flagged++
			}
		}

		records = append(records, recs...)
	}

	log.Info(fmt.Sprintf("✅ Produced %d records (%d flagged) in %v", len(records), flagged, time.Since(processStart)))

	// 3. Storage
	// ----------
	log.Info("Phase 3: Storage (deduplicating insert)...")

	db, err := store.Open(cfg.Storage.Path)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to open store: %v", err))
		os.Exit(1)
	}
	defer db.Close()

	inserted, duplicates, err := db.InsertResults(records)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Insert failed: %v", err))
		os.Exit(1)
	}

	// 4. Final Report
	// ---------------
	log.Info("✨ Ingestion Complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Submissions Fetched: %d\n", len(subs))
	fmt.Printf("Records Produced:    %d\n", len(records))
	fmt.Printf("Records Inserted:    %d\n", inserted)
	fmt.Printf("Duplicates Skipped:  %d\n", duplicates)
	fmt.Printf("Records Flagged:     %d\n", flagged)
	fmt.Printf("Total Duration:      %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")
}
