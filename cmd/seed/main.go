// Package main provides the seed command that loads the curated
// reference tables (architecture metadata and generation insights)
// into the result database.
package main

import (
	"flag"
	"fmt"
	"os"

	"qsbench/internal/config"
	"qsbench/internal/insights"
	"qsbench/internal/logger"
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

	log.Info("🚀 Seeding reference tables")
	log.Info(fmt.Sprintf("🎯 Target: %s", cfg.Storage.Path))

	db, err := store.Open(cfg.Storage.Path)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to open store: %v", err))
		os.Exit(1)
	}
	defer db.Close()

	archs := insights.Architectures()
	for i := range archs {
		if err := db.UpsertArchitecture(&archs[i]); err != nil {
			log.Error(fmt.Sprintf("❌ Failed to seed architecture %s: %v", archs[i].Architecture, err))
			os.Exit(1)
		}
	}

	log.Info(fmt.Sprintf("✅ Seeded %d architecture patterns", len(archs)))

	gens := insights.Default()
	for i := range gens {
		if err := db.UpsertInsight(&gens[i]); err != nil {
			log.Error(fmt.Sprintf("❌ Failed to seed insight for gen %d: %v", gens[i].Generation, err))
			os.Exit(1)
		}

		log.Debug(fmt.Sprintf("Gen %d: %s", gens[i].Generation, gens[i].Headline))
	}

	log.Info(fmt.Sprintf("✅ Seeded %d generation insights", len(gens)))
	log.Info("✨ Seeding complete!")
}
