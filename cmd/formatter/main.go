// Package main provides the formatter command that renders the stored
// benchmark records as an aligned markdown table.
package main

import (
	"flag"
	"fmt"
	"os"

	"qsbench/internal/config"
	"qsbench/internal/formatter"
	"qsbench/internal/logger"
	"qsbench/internal/store"
)

func main() {
	configPath := flag.String("config", "./configs/worker.yaml", "Path to worker config")
	output := flag.String("output", "", "Output file (default: stdout)")
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

	records, err := db.Results()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Failed to load records: %v", err))
		os.Exit(1)
	}

	table := formatter.FormatRecords(records)

	if *output == "" {
		fmt.Print(table)

		return
	}

	if err := os.WriteFile(*output, []byte(table), 0o644); err != nil {
		log.Error(fmt.Sprintf("❌ Write failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✨ Wrote %d records to %s", len(records), *output))
}
