package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"qsbench/internal/config"
	"qsbench/internal/exporter"
	"qsbench/internal/gist"
	"qsbench/internal/models"
	"qsbench/internal/pipeline"
	"qsbench/internal/store"
)

// gistComment mirrors the GitHub API comment shape served by the stub.
type gistComment struct {
	User *gistUser `json:"user"`
	Body string    `json:"body"`
	ID   int64     `json:"id"`
}

type gistUser struct {
	Login string `json:"login"`
}

func serveComments(t *testing.T, comments []gistComment) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(comments)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestWorkerFlow_FetchProcessStoreExport(t *testing.T) {
	fixturePath := filepath.Join("..", "fixtures", "submission.txt")

	body, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	srv := serveComments(t, []gistComment{
		{ID: 1, Body: string(body), User: &gistUser{Login: "benchfan"}},
		{ID: 2, Body: "Nice project, no results yet!", User: nil},
	})

	// 1. Ingestion (simulating worker phase 1)
	client := gist.NewClientWithConfig(&config.SourceConfig{
		GistID:  "testgist",
		BaseURL: srv.URL,
		PerPage: 100,
	}, &config.RetryPolicy{
		MaxAttempts:       2,
		InitialDelayMs:    1,
		MaxDelayMs:        5,
		BackoffMultiplier: 2.0,
		TimeoutSec:        5,
	})

	subs, err := client.FetchSubmissions()
	if err != nil {
		t.Fatalf("FetchSubmissions failed: %v", err)
	}

	if len(subs) != 2 {
		t.Fatalf("Expected 2 submissions, got %d", len(subs))
	}

	// 2. Processing (worker phase 2)
	p := pipeline.New()

	var records []models.BenchmarkRecord
	for _, sub := range subs {
		records = append(records, p.Process(sub)...)
	}

	if len(records) != 5 {
		t.Fatalf("Expected 5 records, got %d", len(records))
	}

	if records[0].SubmitterID != "benchfan" {
		t.Errorf("Expected submitter benchfan, got %s", records[0].SubmitterID)
	}

	if records[0].Architecture == nil || *records[0].Architecture != "Coffee Lake" {
		t.Errorf("Expected Coffee Lake, got %v", records[0].Architecture)
	}

	// 3. Storage (worker phase 3)
	db, err := store.Open(filepath.Join(t.TempDir(), "benchmarks.db"))
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	defer db.Close()

	inserted, duplicates, err := db.InsertResults(records)
	if err != nil {
		t.Fatalf("InsertResults failed: %v", err)
	}

	if inserted != 5 || duplicates != 0 {
		t.Errorf("Expected (5, 0), got (%d, %d)", inserted, duplicates)
	}

	// Re-running the whole flow must be a no-op: the dedup hashes make
	// ingestion idempotent.
	inserted, duplicates, err = db.InsertResults(records)
	if err != nil {
		t.Fatalf("Second InsertResults failed: %v", err)
	}

	if inserted != 0 || duplicates != 5 {
		t.Errorf("Expected (0, 5) on re-ingestion, got (%d, %d)", inserted, duplicates)
	}

	// 4. Export (exporter flow)
	exportPath := filepath.Join(t.TempDir(), "benchmarks.json")

	if err := exporter.New(db).WriteFile(exportPath, true); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}

	var doc exporter.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}

	if doc.Meta.TotalResults != 5 {
		t.Errorf("Expected TotalResults 5, got %d", doc.Meta.TotalResults)
	}

	if doc.Meta.UniqueCPUs != 1 {
		t.Errorf("Expected UniqueCpus 1, got %d", doc.Meta.UniqueCPUs)
	}

	if doc.Meta.UniqueTests != 5 {
		t.Errorf("Expected UniqueTests 5, got %d", doc.Meta.UniqueTests)
	}
}
