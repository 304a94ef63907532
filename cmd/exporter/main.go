// Package main provides the exporter command that builds the published
// JSON document from the result database.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"qsbench/internal/config"
	"qsbench/internal/exporter"
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

	log.Info("🚀 Starting export")
	log.Info(fmt.Sprintf("📍 Source: %s", cfg.Storage.Path))
	log.Info(fmt.Sprintf("🎯 Target: %s", cfg.Export.Path))

	startTime := time.Now()

	db, err := store.Open(cfg.Storage.Path)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to open store: %v", err))
		os.Exit(1)
	}
	defer db.Close()

	exp := exporter.New(db)

	doc, err := exp.Build()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Build failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Built document: %d results, %d architectures, %d feature entries",
		len(doc.Results), len(doc.Architectures), len(doc.CPUFeatures)))

	if err := exp.WriteFile(cfg.Export.Path, cfg.Export.PrettyPrint); err != nil {
		log.Error(fmt.Sprintf("❌ Export failed: %v", err))
		os.Exit(1)
	}

	info, err := os.Stat(cfg.Export.Path)
	if err == nil {
		log.Info(fmt.Sprintf("✨ Wrote %s (%.1f KB) in %v", cfg.Export.Path, float64(info.Size())/1024, time.Since(startTime)))
	}
}
