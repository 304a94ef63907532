// Package models defines the data types shared across the benchmark
// ingestion pipeline, storage, and export layers.
package models

// Submission is one raw unit of ingested text: an opaque blob that may
// embed zero or more benchmark result tables, plus the identity of
// whoever posted it. An empty Submitter means the identity is unknown
// and is normalized to the anonymous sentinel by the pipeline.
type Submission struct {
	Body      string `json:"body"`
	Submitter string `json:"submitter"`
}

// RawRow holds the eight free-text fields of one result-table row,
// exactly as they appeared in the submission. All typing and unit
// handling happens later in the normalizer.
type RawRow struct {
	CPU      string `json:"cpu"`
	Test     string `json:"test"`
	File     string `json:"file"`
	Bitrate  string `json:"bitrate"`
	Time     string `json:"time"`
	AvgFPS   string `json:"avgFps"`
	AvgSpeed string `json:"avgSpeed"`
	AvgWatts string `json:"avgWatts"`
}

// BenchmarkRecord is the canonical, fully normalized representation of
// one benchmark observation. It is constructed once per valid raw row
// and is immutable afterwards; the store enforces uniqueness on
// ResultHash. Pointer fields are nullable and marshal to JSON null.
type BenchmarkRecord struct {
	SubmitterID      string   `json:"submitter_id"`
	CPURaw           string   `json:"cpu_raw"`
	CPUBrand         *string  `json:"cpu_brand"`
	CPUModel         *string  `json:"cpu_model"`
	CPUGeneration    *int     `json:"cpu_generation"`
	Architecture     *string  `json:"architecture"`
	TestName         string   `json:"test_name"`
	TestFile         string   `json:"test_file"`
	BitrateKbps      int      `json:"bitrate_kbps"`
	TimeSeconds      float64  `json:"time_seconds"`
	AvgFPS           float64  `json:"avg_fps"`
	AvgSpeed         *float64 `json:"avg_speed"`
	AvgWatts         *float64 `json:"avg_watts"`
	FPSPerWatt       *float64 `json:"fps_per_watt"`
	ResultHash       string   `json:"result_hash"`
	Vendor           string   `json:"vendor"`
	DataQualityFlags []string `json:"data_quality_flags"`
}
