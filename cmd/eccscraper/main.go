// Package main provides the eccscraper command that looks up ECC
// memory support on Intel ARK for every CPU in the result database and
// stores the verdicts in the feature side-table.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"qsbench/internal/arkscraper"
	"qsbench/internal/config"
	"qsbench/internal/logger"
	"qsbench/internal/store"
)

func main() {
	configPath := flag.String("config", "./configs/worker.yaml", "Path to worker config")
	headless := flag.Bool("headless", true, "Run browser headless")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	db, err := store.Open(cfg.Storage.Path)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to open store: %v", err))
		os.Exit(1)
	}
	defer db.Close()

	labels, err := db.CPULabels()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to list CPUs: %v", err))
		os.Exit(1)
	}

	if len(labels) == 0 {
		log.Warn("No CPUs in database; run the worker first")

		return
	}

	log.Info("🚀 Starting ECC lookup")
	log.Info(fmt.Sprintf("📍 CPUs to check: %d", len(labels)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	startTime := time.Now()

	scraper := arkscraper.New(log, *headless)

	results, err := scraper.LookupAll(ctx, labels)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Lookup aborted: %v", err))
		os.Exit(1)
	}

	features := arkscraper.Features(results)
	for i := range features {
		if err := db.UpsertFeature(&features[i]); err != nil {
			log.Error(fmt.Sprintf("❌ Failed to store feature for %s: %v", features[i].CPURaw, err))
			os.Exit(1)
		}
	}

	notFound := len(results) - len(features)

	log.Info("✨ ECC lookup complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("CPUs Checked:   %d\n", len(results))
	fmt.Printf("Verdicts Saved: %d\n", len(features))
	fmt.Printf("Not Found:      %d\n", notFound)
	fmt.Printf("Total Duration: %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")

	for _, r := range results {
		if !r.Found {
			fmt.Printf("  - %s: %s\n", r.CPURaw, r.Note)
		}
	}
}
