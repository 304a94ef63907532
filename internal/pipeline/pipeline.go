package pipeline

import (
	"qsbench/internal/models"
)

// Record-level constants.
const (
	// VendorIntel tags every record produced by this pipeline; the
	// taxonomy currently covers Intel parts only.
	VendorIntel = "intel"

	// AnonymousSubmitter replaces a missing submitter identity. The
	// name matches the placeholder the upstream platform uses for
	// deleted accounts.
	AnonymousSubmitter = "ghost"
)

// Pipeline composes the extractor, normalizer, classifier, metrics and
// flagging stages into the per-submission transformation. It holds no
// mutable state: submissions, tables and rows are independent units of
// work and may be processed concurrently, and reprocessing identical
// input always yields identical records (dedup hashes included).
type Pipeline struct {
	extractor  *TableExtractor
	normalizer *FieldNormalizer
	classifier *CPUClassifier
	flagger    *QualityFlagger
}

// New creates a pipeline with default stages.
func New() *Pipeline {
	return &Pipeline{
		extractor:  NewTableExtractor(),
		normalizer: NewFieldNormalizer(),
		classifier: NewCPUClassifier(),
		flagger:    NewQualityFlagger(),
	}
}

// NewWithDeps creates a pipeline with injected stages.
func NewWithDeps(extractor *TableExtractor, normalizer *FieldNormalizer, classifier *CPUClassifier, flagger *QualityFlagger) *Pipeline {
	return &Pipeline{
		extractor:  extractor,
		normalizer: normalizer,
		classifier: classifier,
		flagger:    flagger,
	}
}

// Process runs one submission through the full pipeline and returns
// its canonical records, zero or more. No row-level failure aborts the
// submission: a window that fails shape validation is skipped, a row
// whose required fields do not parse is dropped, and everything else
// degrades field by field.
func (p *Pipeline) Process(sub models.Submission) []models.BenchmarkRecord {
	submitter := sub.Submitter
	if submitter == "" {
		submitter = AnonymousSubmitter
	}

	var records []models.BenchmarkRecord

	for _, rows := range p.extractor.Extract(sub.Body) {
		for _, row := range rows {
			rec, ok := p.processRow(row, submitter)
			if !ok {
				continue
			}

			records = append(records, rec)
		}
	}

	return records
}

// processRow turns one raw row into a canonical record. ok is false
// when a required field fails to normalize.
func (p *Pipeline) processRow(row models.RawRow, submitter string) (models.BenchmarkRecord, bool) {
	fields, err := p.normalizer.Normalize(row)
	if err != nil {
		return models.BenchmarkRecord{}, false
	}

	cls := p.classifier.Classify(row.CPU)
	fpw := FPSPerWatt(fields.AvgFPS, fields.AvgWatts)

	rec := models.BenchmarkRecord{
		SubmitterID:   submitter,
		CPURaw:        row.CPU,
		CPUBrand:      cls.Brand,
		CPUModel:      cls.Model,
		CPUGeneration: cls.Generation,
		Architecture:  cls.Architecture,
		TestName:      row.Test,
		TestFile:      row.File,
		BitrateKbps:   fields.BitrateKbps,
		TimeSeconds:   fields.TimeSeconds,
		AvgFPS:        fields.AvgFPS,
		AvgSpeed:      fields.AvgSpeed,
		AvgWatts:      fields.AvgWatts,
		FPSPerWatt:    fpw,
		Vendor:        VendorIntel,
	}

	rec.DataQualityFlags = p.flagger.Flags(rec.AvgWatts, rec.FPSPerWatt, rec.Architecture)
	rec.ResultHash = ResultHash(rec.CPURaw, rec.TestName, rec.TestFile, rec.BitrateKbps, rec.AvgFPS, rec.AvgWatts)

	return rec, true
}
