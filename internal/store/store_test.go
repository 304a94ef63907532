package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"qsbench/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}

	t.Cleanup(func() { _ = s.Close() })

	return s
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func testRecord(hash string) models.BenchmarkRecord {
	return models.BenchmarkRecord{
		SubmitterID:   "alice",
		CPURaw:        "i5-8500",
		CPUBrand:      strPtr("i5"),
		CPUModel:      strPtr("8500"),
		CPUGeneration: intPtr(8),
		Architecture:  strPtr("Coffee Lake"),
		TestName:      "h264_1080p",
		TestFile:      "ribblehead_1080p",
		BitrateKbps:   12677,
		TimeSeconds:   30.71,
		AvgFPS:        93,
		AvgSpeed:      floatPtr(3.1),
		AvgWatts:      floatPtr(14.2),
		FPSPerWatt:    floatPtr(93 / 14.2),
		ResultHash:    hash,
		Vendor:        "intel",
	}
}

func TestInsertResultRoundTrip(t *testing.T) {
	s := openTestStore(t)

	rec := testRecord("hash-1")
	rec.DataQualityFlags = []string{"power_too_low"}

	inserted, err := s.InsertResult(&rec)
	if err != nil {
		t.Fatalf("InsertResult() unexpected error: %v", err)
	}

	if !inserted {
		t.Fatal("InsertResult() = false, want true for a new record")
	}

	records, err := s.Results()
	if err != nil {
		t.Fatalf("Results() unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("Results() returned %d records, want 1", len(records))
	}

	got := records[0]

	if got.CPURaw != rec.CPURaw || got.ResultHash != rec.ResultHash {
		t.Errorf("round trip mismatch: got %+v", got)
	}

	if got.Architecture == nil || *got.Architecture != "Coffee Lake" {
		t.Errorf("Architecture = %v, want Coffee Lake", got.Architecture)
	}

	if got.AvgWatts == nil || *got.AvgWatts != 14.2 {
		t.Errorf("AvgWatts = %v, want 14.2", got.AvgWatts)
	}

	if !reflect.DeepEqual(got.DataQualityFlags, rec.DataQualityFlags) {
		t.Errorf("DataQualityFlags = %v, want %v", got.DataQualityFlags, rec.DataQualityFlags)
	}
}

func TestInsertResultNullableFields(t *testing.T) {
	s := openTestStore(t)

	rec := testRecord("hash-nulls")
	rec.CPUBrand = nil
	rec.CPUModel = nil
	rec.CPUGeneration = nil
	rec.Architecture = nil
	rec.AvgSpeed = nil
	rec.AvgWatts = nil
	rec.FPSPerWatt = nil
	rec.DataQualityFlags = nil

	if _, err := s.InsertResult(&rec); err != nil {
		t.Fatalf("InsertResult() unexpected error: %v", err)
	}

	records, err := s.Results()
	if err != nil {
		t.Fatalf("Results() unexpected error: %v", err)
	}

	got := records[0]

	if got.Architecture != nil || got.AvgWatts != nil || got.FPSPerWatt != nil {
		t.Errorf("nullable fields not nil after round trip: %+v", got)
	}

	if got.DataQualityFlags != nil {
		t.Errorf("DataQualityFlags = %v, want nil", got.DataQualityFlags)
	}
}

func TestInsertResultDuplicateIsNoOp(t *testing.T) {
	s := openTestStore(t)

	rec := testRecord("hash-dup")

	if _, err := s.InsertResult(&rec); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	// Same hash from a different submitter: the observation is already
	// recorded, so the insert is silently skipped.
	dup := testRecord("hash-dup")
	dup.SubmitterID = "bob"

	inserted, err := s.InsertResult(&dup)
	if err != nil {
		t.Fatalf("duplicate insert errored: %v", err)
	}

	if inserted {
		t.Error("InsertResult() = true for duplicate hash, want false")
	}

	records, err := s.Results()
	if err != nil {
		t.Fatalf("Results() unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Errorf("Results() returned %d records, want 1", len(records))
	}
}

func TestInsertResultsBatch(t *testing.T) {
	s := openTestStore(t)

	batch := []models.BenchmarkRecord{
		testRecord("hash-a"),
		testRecord("hash-b"),
		testRecord("hash-a"),
	}

	inserted, duplicates, err := s.InsertResults(batch)
	if err != nil {
		t.Fatalf("InsertResults() unexpected error: %v", err)
	}

	if inserted != 2 || duplicates != 1 {
		t.Errorf("InsertResults() = (%d, %d), want (2, 1)", inserted, duplicates)
	}
}

func TestCPULabels(t *testing.T) {
	s := openTestStore(t)

	a := testRecord("hash-a")
	b := testRecord("hash-b")
	b.CPURaw = "N5105"
	c := testRecord("hash-c")

	if _, _, err := s.InsertResults([]models.BenchmarkRecord{a, b, c}); err != nil {
		t.Fatalf("InsertResults() unexpected error: %v", err)
	}

	labels, err := s.CPULabels()
	if err != nil {
		t.Fatalf("CPULabels() unexpected error: %v", err)
	}

	want := []string{"N5105", "i5-8500"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("CPULabels() = %v, want %v", labels, want)
	}
}

func TestArchitectureRoundTrip(t *testing.T) {
	s := openTestStore(t)

	a := models.Architecture{
		Pattern:        `i[3579]-8\d{3}`,
		Architecture:   "Coffee Lake",
		Codename:       strPtr("CFL"),
		ReleaseYear:    intPtr(2018),
		ReleaseQuarter: strPtr("Q4"),
		SortOrder:      80,
		H264Encode:     true,
		HEVC8BitEncode: true,
		IGPUName:       strPtr("UHD Graphics 630"),
		ProcessNm:      strPtr("14"),
		Vendor:         "intel",
	}

	if err := s.UpsertArchitecture(&a); err != nil {
		t.Fatalf("UpsertArchitecture() unexpected error: %v", err)
	}

	// Upsert with the same pattern replaces, not duplicates.
	if err := s.UpsertArchitecture(&a); err != nil {
		t.Fatalf("second UpsertArchitecture() unexpected error: %v", err)
	}

	archs, err := s.Architectures()
	if err != nil {
		t.Fatalf("Architectures() unexpected error: %v", err)
	}

	if len(archs) != 1 {
		t.Fatalf("Architectures() returned %d rows, want 1", len(archs))
	}

	got := archs[0]

	if got.Architecture != "Coffee Lake" || !got.HEVC8BitEncode || got.HEVC10BitEncode {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if got.Codename == nil || *got.Codename != "CFL" {
		t.Errorf("Codename = %v, want CFL", got.Codename)
	}
}

func TestFeatureRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.UpsertFeature(&models.CPUFeature{CPURaw: "i5-8500", ECCSupport: false}); err != nil {
		t.Fatalf("UpsertFeature() unexpected error: %v", err)
	}

	if err := s.UpsertFeature(&models.CPUFeature{CPURaw: "E-2144G", ECCSupport: true}); err != nil {
		t.Fatalf("UpsertFeature() unexpected error: %v", err)
	}

	features, err := s.Features()
	if err != nil {
		t.Fatalf("Features() unexpected error: %v", err)
	}

	if len(features) != 2 {
		t.Fatalf("Features() returned %d rows, want 2", len(features))
	}

	if !features["E-2144G"].ECCSupport {
		t.Error("E-2144G ECCSupport = false, want true")
	}

	if features["i5-8500"].ECCSupport {
		t.Error("i5-8500 ECCSupport = true, want false")
	}
}

func TestInsightUpsert(t *testing.T) {
	s := openTestStore(t)

	in := models.GenerationInsight{
		Generation: 8,
		Headline:   "The Sweet Spot for Value",
		Summary:    "summary",
		Pros:       "pros",
		Cons:       "cons",
		BestFor:    "best for",
		VsPrevious: "vs previous",
	}

	if err := s.UpsertInsight(&in); err != nil {
		t.Fatalf("UpsertInsight() unexpected error: %v", err)
	}

	if err := s.UpsertInsight(&in); err != nil {
		t.Fatalf("second UpsertInsight() unexpected error: %v", err)
	}
}
