// Package main provides the crawler command: a dry run of the
// ingestion pipeline that writes the processed records to a JSON file
// instead of the database. Useful for inspecting what a worker run
// would produce.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"qsbench/internal/config"
	"qsbench/internal/gist"
	"qsbench/internal/logger"
	"qsbench/internal/models"
	"qsbench/internal/pipeline"
)

func main() {
	gistID := flag.String("gist-id", "", "Gist whose comments carry the submissions")
	output := flag.String("output", "records.json", "Output file for processed records")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.NewLogger(*logLevel)

	if *gistID == "" {
		log.Error("Please provide a gist ID with -gist-id flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Info("🚀 Starting dry-run crawl")
	log.Info(fmt.Sprintf("📍 Source: gist %s", *gistID))

	startTime := time.Now()

	client := gist.NewClient(*gistID)

	secrets, err := config.LoadSecrets()
	if err == nil && secrets.GitHubToken != "" {
		client.SetToken(secrets.GitHubToken)
	}

	subs, err := client.FetchSubmissions()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Fetch failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Fetched %d submissions in %v", len(subs), time.Since(startTime)))

	p := pipeline.New()

	var records []models.BenchmarkRecord
	for _, sub := range subs {
		records = append(records, p.Process(sub)...)
	}

	log.Info(fmt.Sprintf("✅ Produced %d records", len(records)))

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Error(fmt.Sprintf("❌ Encoding failed: %v", err))
		os.Exit(1)
	}

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Error(fmt.Sprintf("❌ Write failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✨ Wrote %d records to %s in %v", len(records), *output, time.Since(startTime)))
}
