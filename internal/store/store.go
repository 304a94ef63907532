// Package store persists canonical benchmark records and the curated
// reference tables in a SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	// Registers the sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"

	"qsbench/internal/models"
)

// Store is a high-level interface to the result database. It's safe
// for concurrent use by multiple goroutines.
type Store struct {
	db *sql.DB
	// prepared statements
	insertResult  *sql.Stmt
	insertArch    *sql.Stmt
	insertFeature *sql.Stmt
	insertInsight *sql.Stmt
}

// createStmts are run on open; every statement is idempotent. The
// UNIQUE constraint on result_hash is what makes re-ingestion safe:
// inserting a duplicate observation is a no-op, not an error.
const createStmts = `
CREATE TABLE IF NOT EXISTS benchmark_results (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	submitted_at TEXT NOT NULL DEFAULT (datetime('now')),
	submitter_id TEXT,
	cpu_raw TEXT NOT NULL,
	cpu_brand TEXT,
	cpu_model TEXT,
	cpu_generation INTEGER,
	architecture TEXT,
	test_name TEXT NOT NULL,
	test_file TEXT NOT NULL,
	bitrate_kbps INTEGER NOT NULL,
	time_seconds REAL NOT NULL,
	avg_fps REAL NOT NULL,
	avg_speed REAL,
	avg_watts REAL,
	fps_per_watt REAL,
	result_hash TEXT NOT NULL UNIQUE,
	vendor TEXT NOT NULL,
	data_quality_flags TEXT
);
CREATE INDEX IF NOT EXISTS idx_results_architecture ON benchmark_results(architecture);
CREATE INDEX IF NOT EXISTS idx_results_cpu_raw ON benchmark_results(cpu_raw);
CREATE TABLE IF NOT EXISTS cpu_architectures (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	pattern TEXT NOT NULL UNIQUE,
	architecture TEXT NOT NULL,
	codename TEXT,
	release_year INTEGER,
	release_quarter TEXT,
	sort_order INTEGER NOT NULL,
	h264_encode INTEGER NOT NULL DEFAULT 0,
	hevc_8bit_encode INTEGER NOT NULL DEFAULT 0,
	hevc_10bit_encode INTEGER NOT NULL DEFAULT 0,
	vp9_encode INTEGER NOT NULL DEFAULT 0,
	av1_encode INTEGER NOT NULL DEFAULT 0,
	igpu_name TEXT,
	process_nm TEXT,
	vendor TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS cpu_features (
	cpu_raw TEXT PRIMARY KEY,
	ecc_support INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS generation_insights (
	generation INTEGER PRIMARY KEY,
	headline TEXT NOT NULL,
	summary TEXT NOT NULL,
	pros TEXT NOT NULL,
	cons TEXT NOT NULL,
	best_for TEXT NOT NULL,
	vs_previous TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		_ = db.Close()

		return nil, err
	}

	if err := s.prepareStatements(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	for _, q := range strings.Split(createStmts, ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}

		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	return nil
}

func (s *Store) prepareStatements() error {
	var err error

	s.insertResult, err = s.db.Prepare(`
		INSERT OR IGNORE INTO benchmark_results (
			submitter_id, cpu_raw, cpu_brand, cpu_model, cpu_generation,
			architecture, test_name, test_file, bitrate_kbps, time_seconds,
			avg_fps, avg_speed, avg_watts, fps_per_watt, result_hash, vendor,
			data_quality_flags
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert result: %w", err)
	}

	s.insertArch, err = s.db.Prepare(`
		INSERT OR REPLACE INTO cpu_architectures (
			pattern, architecture, codename, release_year, release_quarter,
			sort_order, h264_encode, hevc_8bit_encode, hevc_10bit_encode,
			vp9_encode, av1_encode, igpu_name, process_nm, vendor
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert architecture: %w", err)
	}

	s.insertFeature, err = s.db.Prepare(
		"INSERT OR REPLACE INTO cpu_features (cpu_raw, ecc_support) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert feature: %w", err)
	}

	s.insertInsight, err = s.db.Prepare(`
		INSERT OR REPLACE INTO generation_insights (
			generation, headline, summary, pros, cons, best_for, vs_previous, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, datetime('now'))`)
	if err != nil {
		return fmt.Errorf("prepare insert insight: %w", err)
	}

	return nil
}

// InsertResult inserts one canonical record. It returns false without
// error when a record with the same result hash already exists; the
// storage contract treats that collision as an expected no-op.
func (s *Store) InsertResult(rec *models.BenchmarkRecord) (bool, error) {
	flags, err := marshalFlags(rec.DataQualityFlags)
	if err != nil {
		return false, err
	}

	res, err := s.insertResult.Exec(
		rec.SubmitterID, rec.CPURaw, rec.CPUBrand, rec.CPUModel, rec.CPUGeneration,
		rec.Architecture, rec.TestName, rec.TestFile, rec.BitrateKbps, rec.TimeSeconds,
		rec.AvgFPS, rec.AvgSpeed, rec.AvgWatts, rec.FPSPerWatt, rec.ResultHash, rec.Vendor,
		flags,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert result: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return n > 0, nil
}

// InsertResults inserts a batch and reports how many were new and how
// many were duplicate no-ops.
func (s *Store) InsertResults(recs []models.BenchmarkRecord) (inserted, duplicates int, err error) {
	for i := range recs {
		ok, err := s.InsertResult(&recs[i])
		if err != nil {
			return inserted, duplicates, err
		}

		if ok {
			inserted++
		} else {
			duplicates++
		}
	}

	return inserted, duplicates, nil
}

// Results returns all benchmark records ordered by insertion id.
func (s *Store) Results() ([]models.BenchmarkRecord, error) {
	rows, err := s.db.Query(`
		SELECT submitter_id, cpu_raw, cpu_brand, cpu_model, cpu_generation,
			architecture, test_name, test_file, bitrate_kbps, time_seconds,
			avg_fps, avg_speed, avg_watts, fps_per_watt, result_hash, vendor,
			data_quality_flags
		FROM benchmark_results ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var records []models.BenchmarkRecord

	for rows.Next() {
		var (
			rec        models.BenchmarkRecord
			submitter  sql.NullString
			brand      sql.NullString
			model      sql.NullString
			generation sql.NullInt64
			arch       sql.NullString
			speed      sql.NullFloat64
			watts      sql.NullFloat64
			fpw        sql.NullFloat64
			flags      sql.NullString
		)

		err := rows.Scan(&submitter, &rec.CPURaw, &brand, &model, &generation,
			&arch, &rec.TestName, &rec.TestFile, &rec.BitrateKbps, &rec.TimeSeconds,
			&rec.AvgFPS, &speed, &watts, &fpw, &rec.ResultHash, &rec.Vendor, &flags)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		rec.SubmitterID = submitter.String
		rec.CPUBrand = nullString(brand)
		rec.CPUModel = nullString(model)
		rec.CPUGeneration = nullInt(generation)
		rec.Architecture = nullString(arch)
		rec.AvgSpeed = nullFloat(speed)
		rec.AvgWatts = nullFloat(watts)
		rec.FPSPerWatt = nullFloat(fpw)

		if flags.Valid {
			if err := json.Unmarshal([]byte(flags.String), &rec.DataQualityFlags); err != nil {
				return nil, fmt.Errorf("failed to decode flags: %w", err)
			}
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

// CPULabels returns the distinct raw CPU labels present in the result
// table, for feature scraping.
func (s *Store) CPULabels() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT cpu_raw FROM benchmark_results ORDER BY cpu_raw")
	if err != nil {
		return nil, fmt.Errorf("failed to query cpu labels: %w", err)
	}
	defer rows.Close()

	var labels []string

	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("failed to scan cpu label: %w", err)
		}

		labels = append(labels, label)
	}

	return labels, rows.Err()
}

// UpsertArchitecture inserts or replaces one reference row, keyed by
// pattern.
func (s *Store) UpsertArchitecture(a *models.Architecture) error {
	_, err := s.insertArch.Exec(
		a.Pattern, a.Architecture, a.Codename, a.ReleaseYear, a.ReleaseQuarter,
		a.SortOrder, a.H264Encode, a.HEVC8BitEncode, a.HEVC10BitEncode,
		a.VP9Encode, a.AV1Encode, a.IGPUName, a.ProcessNm, a.Vendor,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert architecture: %w", err)
	}

	return nil
}

// Architectures returns the reference table ordered by sort order.
func (s *Store) Architectures() ([]models.Architecture, error) {
	rows, err := s.db.Query(`
		SELECT pattern, architecture, codename, release_year, release_quarter,
			sort_order, h264_encode, hevc_8bit_encode, hevc_10bit_encode,
			vp9_encode, av1_encode, igpu_name, process_nm, vendor
		FROM cpu_architectures ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to query architectures: %w", err)
	}
	defer rows.Close()

	var archs []models.Architecture

	for rows.Next() {
		var (
			a        models.Architecture
			codename sql.NullString
			year     sql.NullInt64
			quarter  sql.NullString
			igpu     sql.NullString
			process  sql.NullString
		)

		err := rows.Scan(&a.Pattern, &a.Architecture, &codename, &year, &quarter,
			&a.SortOrder, &a.H264Encode, &a.HEVC8BitEncode, &a.HEVC10BitEncode,
			&a.VP9Encode, &a.AV1Encode, &igpu, &process, &a.Vendor)
		if err != nil {
			return nil, fmt.Errorf("failed to scan architecture: %w", err)
		}

		a.Codename = nullString(codename)
		a.ReleaseYear = nullInt(year)
		a.ReleaseQuarter = nullString(quarter)
		a.IGPUName = nullString(igpu)
		a.ProcessNm = nullString(process)

		archs = append(archs, a)
	}

	return archs, rows.Err()
}

// UpsertFeature inserts or replaces one CPU feature row.
func (s *Store) UpsertFeature(f *models.CPUFeature) error {
	if _, err := s.insertFeature.Exec(f.CPURaw, f.ECCSupport); err != nil {
		return fmt.Errorf("failed to upsert feature: %w", err)
	}

	return nil
}

// Features returns the CPU feature side-table keyed by raw label.
func (s *Store) Features() (map[string]models.CPUFeature, error) {
	rows, err := s.db.Query("SELECT cpu_raw, ecc_support FROM cpu_features")
	if err != nil {
		return nil, fmt.Errorf("failed to query features: %w", err)
	}
	defer rows.Close()

	features := make(map[string]models.CPUFeature)

	for rows.Next() {
		var f models.CPUFeature
		if err := rows.Scan(&f.CPURaw, &f.ECCSupport); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}

		features[f.CPURaw] = f
	}

	return features, rows.Err()
}

// UpsertInsight inserts or replaces one generation insight.
func (s *Store) UpsertInsight(in *models.GenerationInsight) error {
	_, err := s.insertInsight.Exec(
		in.Generation, in.Headline, in.Summary, in.Pros, in.Cons, in.BestFor, in.VsPrevious,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert insight: %w", err)
	}

	return nil
}

// marshalFlags encodes the flag set as a JSON array, or SQL NULL when
// the set is empty.
func marshalFlags(flags []string) (any, error) {
	if len(flags) == 0 {
		return nil, nil
	}

	data, err := json.Marshal(flags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode flags: %w", err)
	}

	return string(data), nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}

	s := v.String

	return &s
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}

	n := int(v.Int64)

	return &n
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}

	f := v.Float64

	return &f
}
