package pipeline

import (
	"errors"
	"testing"

	"qsbench/internal/models"
)

func TestNormalizeBitrate(t *testing.T) {
	n := NewFieldNormalizer()

	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"12677 kb/s", 12677, false},
		{"42945kb/s", 42945, false},
		{"8000", 8000, false},
		{"  8000  ", 8000, false},
		{"N/A", 0, true},
		{"", 0, true},
		{"fast", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := n.NormalizeBitrate(tt.input)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBitrate) {
					t.Errorf("NormalizeBitrate(%q) error = %v, want ErrInvalidBitrate", tt.input, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("NormalizeBitrate(%q) unexpected error: %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("NormalizeBitrate(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	n := NewFieldNormalizer()

	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"30.71s", 30.71, false},
		{"122.64s", 122.64, false},
		{"45", 45, false},
		{"N/A", 0, true},
		{"nan", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := n.NormalizeTime(tt.input)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTime) {
					t.Errorf("NormalizeTime(%q) error = %v, want ErrInvalidTime", tt.input, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("NormalizeTime(%q) unexpected error: %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("NormalizeTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSpeed(t *testing.T) {
	n := NewFieldNormalizer()

	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{"multiplier suffix", "3.1x", ptr(3.1)},
		{"bare number", "0.81", ptr(0.81)},
		{"not available", "N/A", nil},
		{"lowercase sentinel", "n/a", nil},
		{"nan", "nan", nil},
		{"empty", "", nil},
		{"garbage", "slow", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.NormalizeSpeed(tt.input)
			if !floatPtrEqual(got, tt.want) {
				t.Errorf("NormalizeSpeed(%q) = %v, want %v", tt.input, fmtPtr(got), fmtPtr(tt.want))
			}
		})
	}
}

func TestNormalizeWatts(t *testing.T) {
	n := NewFieldNormalizer()

	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{"plausible reading", "45.2", ptr(45.2)},
		{"low but positive", "0.1", ptr(0.1)},
		{"upper bound", "500", ptr(500.0)},
		{"zero is artifact", "0", nil},
		{"negative is artifact", "-5", nil},
		{"above band is artifact", "501", nil},
		{"not available", "N/A", nil},
		{"empty", "", nil},
		{"nan sentinel", "NaN", nil},
		{"garbage", "hot", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.NormalizeWatts(tt.input)
			if !floatPtrEqual(got, tt.want) {
				t.Errorf("NormalizeWatts(%q) = %v, want %v", tt.input, fmtPtr(got), fmtPtr(tt.want))
			}
		})
	}
}

func TestNormalizeRowRequiredFieldFailure(t *testing.T) {
	n := NewFieldNormalizer()

	row := models.RawRow{
		CPU:      "i5-8500",
		Test:     "h264_1080p",
		File:     "ribblehead_1080p",
		Bitrate:  "12677 kb/s",
		Time:     "N/A",
		AvgFPS:   "93",
		AvgSpeed: "3.1x",
		AvgWatts: "14.2",
	}

	if _, err := n.Normalize(row); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("Normalize() error = %v, want ErrInvalidTime", err)
	}
}

func TestNormalizeRowNullableFieldsDegrade(t *testing.T) {
	n := NewFieldNormalizer()

	row := models.RawRow{
		CPU:      "i5-8500",
		Test:     "h264_1080p",
		File:     "ribblehead_1080p",
		Bitrate:  "12677 kb/s",
		Time:     "30.71s",
		AvgFPS:   "93",
		AvgSpeed: "N/A",
		AvgWatts: "0",
	}

	fields, err := n.Normalize(row)
	if err != nil {
		t.Fatalf("Normalize() unexpected error: %v", err)
	}

	if fields.BitrateKbps != 12677 {
		t.Errorf("BitrateKbps = %d, want 12677", fields.BitrateKbps)
	}

	if fields.AvgSpeed != nil {
		t.Errorf("AvgSpeed = %v, want nil", *fields.AvgSpeed)
	}

	if fields.AvgWatts != nil {
		t.Errorf("AvgWatts = %v, want nil", *fields.AvgWatts)
	}
}

func ptr(f float64) *float64 {
	return &f
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func fmtPtr(f *float64) any {
	if f == nil {
		return "<nil>"
	}

	return *f
}
