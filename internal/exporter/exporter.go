// Package exporter builds the published JSON document from the result
// database.
package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"qsbench/internal/models"
	"qsbench/internal/store"
)

// Document is the full published artifact: every canonical result plus
// the reference tables the frontend needs to render them.
type Document struct {
	Version       int                      `json:"version"`
	LastUpdated   string                   `json:"lastUpdated"`
	Meta          Meta                     `json:"meta"`
	Architectures []models.Architecture    `json:"architectures"`
	Results       []models.BenchmarkRecord `json:"results"`
	CPUFeatures   map[string]CPUFeature    `json:"cpuFeatures"`
}

// Meta summarizes the dataset for display without scanning the full
// result list.
type Meta struct {
	TotalResults       int `json:"totalResults"`
	UniqueCPUs         int `json:"uniqueCpus"`
	ArchitecturesCount int `json:"architecturesCount"`
	UniqueTests        int `json:"uniqueTests"`
}

// CPUFeature is the per-CPU feature entry keyed by raw label in the
// document.
type CPUFeature struct {
	ECCSupport bool `json:"ecc_support"`
}

// Exporter reads from a store and writes the export document.
type Exporter struct {
	store *store.Store
	now   func() time.Time
}

// New creates an exporter backed by the given store.
func New(s *store.Store) *Exporter {
	return &Exporter{store: s, now: time.Now}
}

// Build assembles the export document from the store's current
// contents.
func (e *Exporter) Build() (*Document, error) {
	results, err := e.store.Results()
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}

	archs, err := e.store.Architectures()
	if err != nil {
		return nil, fmt.Errorf("failed to load architectures: %w", err)
	}

	features, err := e.store.Features()
	if err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}

	cpuFeatures := make(map[string]CPUFeature, len(features))
	for raw, f := range features {
		cpuFeatures[raw] = CPUFeature{ECCSupport: f.ECCSupport}
	}

	doc := &Document{
		Version:       1,
		LastUpdated:   e.now().UTC().Format(time.RFC3339),
		Meta:          buildMeta(results),
		Architectures: archs,
		Results:       results,
		CPUFeatures:   cpuFeatures,
	}

	return doc, nil
}

// WriteFile builds the document and writes it to path. prettyPrint
// controls JSON indentation.
func (e *Exporter) WriteFile(path string, prettyPrint bool) error {
	doc, err := e.Build()
	if err != nil {
		return err
	}

	var (
		data    []byte
		marshal error
	)

	if prettyPrint {
		data, marshal = json.MarshalIndent(doc, "", "  ")
	} else {
		data, marshal = json.Marshal(doc)
	}

	if marshal != nil {
		return fmt.Errorf("failed to encode document: %w", marshal)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

func buildMeta(results []models.BenchmarkRecord) Meta {
	cpus := make(map[string]struct{})
	archs := make(map[string]struct{})
	tests := make(map[string]struct{})

	for i := range results {
		r := &results[i]
		cpus[r.CPURaw] = struct{}{}
		tests[r.TestName] = struct{}{}

		if r.Architecture != nil {
			archs[*r.Architecture] = struct{}{}
		}
	}

	return Meta{
		TotalResults:       len(results),
		UniqueCPUs:         len(cpus),
		ArchitecturesCount: len(archs),
		UniqueTests:        len(tests),
	}
}
