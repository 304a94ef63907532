// Package pipeline implements the extraction, classification, and
// normalization pipeline that turns free-text benchmark submissions
// into canonical records.
package pipeline

import (
	"strings"

	"qsbench/internal/models"
)

// headerToken opens a candidate table window: a results table always
// starts with a header line whose first column is CPU.
const headerToken = "CPU"

// tableDataRows is the fixed number of data rows in a valid table,
// one per encoding test.
const tableDataRows = 5

// expectedColumns is the exact header set, in order, that a window
// must carry to be accepted. The submitter identity is attached by the
// pipeline afterwards and is not part of the parsed table.
var expectedColumns = []string{"CPU", "TEST", "FILE", "BITRATE", "TIME", "AVG_FPS", "AVG_SPEED", "AVG_WATTS"}

// TableExtractor scans submission text for embedded fixed-width result
// tables. It is stateless and safe for concurrent use.
type TableExtractor struct{}

// NewTableExtractor creates a new extractor instance.
func NewTableExtractor() *TableExtractor {
	return &TableExtractor{}
}

// Extract returns one row set per valid table found in the body. A
// window that does not parse to exactly five data rows under the exact
// expected header is discarded silently and scanning continues from
// the next line; a body may contain several tables (one per CPU the
// submitter benchmarked).
func (e *TableExtractor) Extract(body string) [][]models.RawRow {
	lines := strings.Split(body, "\n")

	var tables [][]models.RawRow

	for i := 0; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], headerToken) {
			continue
		}

		if i+tableDataRows+1 > len(lines) {
			continue
		}

		rows, ok := parseWindow(lines[i : i+tableDataRows+1])
		if !ok {
			continue
		}

		tables = append(tables, rows)

		// Skip the consumed data rows so an accepted table is never
		// re-scanned.
		i += tableDataRows
	}

	return tables
}

// parseWindow parses a six-line window (header plus five data lines)
// as a whitespace-aligned fixed-width block. Shape and header equality
// are both required, atomically: any deviation rejects the window.
func parseWindow(window []string) ([]models.RawRow, bool) {
	spans := inferColumns(window)
	if len(spans) != len(expectedColumns) {
		return nil, false
	}

	header := sliceCells(window[0], spans)
	for i, name := range expectedColumns {
		if header[i] != name {
			return nil, false
		}
	}

	rows := make([]models.RawRow, 0, tableDataRows)

	for _, line := range window[1:] {
		// A blank line means the block ran short of data rows.
		if strings.TrimSpace(line) == "" {
			return nil, false
		}

		c := sliceCells(line, spans)
		rows = append(rows, models.RawRow{
			CPU:      c[0],
			Test:     c[1],
			File:     c[2],
			Bitrate:  c[3],
			Time:     c[4],
			AvgFPS:   c[5],
			AvgSpeed: c[6],
			AvgWatts: c[7],
		})
	}

	return rows, true
}

// span is a half-open byte range [start, end) of one inferred column.
type span struct {
	start int
	end   int
}

// inferColumns derives column boundaries from the whole window: a byte
// position belongs to a column separator only if every line has a
// space there (or has already ended). Maximal runs of non-separator
// positions become columns, so a value that bleeds across a gap merges
// two columns and the window fails the column-count check.
func inferColumns(window []string) []span {
	width := 0
	for _, line := range window {
		if len(line) > width {
			width = len(line)
		}
	}

	blank := func(pos int) bool {
		for _, line := range window {
			if pos < len(line) && line[pos] != ' ' && line[pos] != '\t' {
				return false
			}
		}

		return true
	}

	var spans []span

	start := -1

	for pos := 0; pos < width; pos++ {
		if blank(pos) {
			if start >= 0 {
				spans = append(spans, span{start: start, end: pos})
				start = -1
			}

			continue
		}

		if start < 0 {
			start = pos
		}
	}

	if start >= 0 {
		spans = append(spans, span{start: start, end: width})
	}

	return spans
}

// sliceCells cuts one line along the inferred spans and trims each
// cell. Positions past the end of the line yield empty cells.
func sliceCells(line string, spans []span) []string {
	cells := make([]string, len(spans))

	for i, sp := range spans {
		start := sp.start
		end := sp.end

		if start > len(line) {
			start = len(line)
		}

		if end > len(line) {
			end = len(line)
		}

		cells[i] = strings.TrimSpace(line[start:end])
	}

	return cells
}
