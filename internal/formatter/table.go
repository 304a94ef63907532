// Package formatter renders benchmark records as aligned markdown
// tables for reports and run summaries.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"qsbench/internal/models"
)

var recordHeader = []string{
	"CPU", "Arch", "Gen", "Test", "Bitrate", "Time", "FPS", "Watts", "FPS/W", "Flags",
}

// FormatRecords renders records as one markdown table with
// display-width-aware column alignment, so rows stay aligned even when
// submitters use non-ASCII CPU labels.
func FormatRecords(records []models.BenchmarkRecord) string {
	table := make([][]string, 0, len(records)+1)
	table = append(table, recordHeader)

	for i := range records {
		table = append(table, recordCells(&records[i]))
	}

	return strings.Join(renderTable(table), "\n") + "\n"
}

func recordCells(r *models.BenchmarkRecord) []string {
	return []string{
		r.CPURaw,
		orDash(r.Architecture),
		intOrDash(r.CPUGeneration),
		r.TestName,
		strconv.Itoa(r.BitrateKbps),
		fmt.Sprintf("%.1fs", r.TimeSeconds),
		fmt.Sprintf("%.1f", r.AvgFPS),
		floatOrDash(r.AvgWatts, "%.1f"),
		floatOrDash(r.FPSPerWatt, "%.1f"),
		flagCell(r.DataQualityFlags),
	}
}

// renderTable pads every cell to its column's maximum display width
// and inserts a separator row after the header.
func renderTable(table [][]string) []string {
	if len(table) == 0 {
		return nil
	}

	colCount := len(table[0])
	widths := make([]int, colCount)

	for _, row := range table {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Separator needs at least three dashes.
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	lines := make([]string, 0, len(table)+1)
	lines = append(lines, renderRow(table[0], widths))

	sep := make([]string, colCount)
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}

	lines = append(lines, renderRow(sep, widths))

	for _, row := range table[1:] {
		lines = append(lines, renderRow(row, widths))
	}

	return lines
}

func renderRow(cells []string, widths []int) string {
	var b strings.Builder

	b.WriteString("|")

	for i, cell := range cells {
		pad := widths[i] - runewidth.StringWidth(cell)

		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(" |")
	}

	return b.String()
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}

	return *s
}

func intOrDash(n *int) string {
	if n == nil {
		return "-"
	}

	return strconv.Itoa(*n)
}

func floatOrDash(f *float64, format string) string {
	if f == nil {
		return "-"
	}

	return fmt.Sprintf(format, *f)
}

func flagCell(flags []string) string {
	if len(flags) == 0 {
		return "-"
	}

	return strings.Join(flags, ",")
}
