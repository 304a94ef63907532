package arkscraper

import "testing"

func TestSearchTerm(t *testing.T) {
	tests := []struct {
		cpuRaw string
		want   string
	}{
		{"i5-8500", "i5-8500"},
		{"Intel(R) Core(TM) i7-10700K CPU @ 3.80GHz", "i7-10700K"},
		{"Intel Pentium Silver J5005", "J5005"},
		{"i3-N305", "N305"},
		{"Ultra 5 225", "Core Ultra 5 225"},
		{"E3-1245v6", "E3-1245 v6"},
	}

	for _, tt := range tests {
		t.Run(tt.cpuRaw, func(t *testing.T) {
			if got := SearchTerm(tt.cpuRaw); got != tt.want {
				t.Errorf("SearchTerm(%q) = %q, want %q", tt.cpuRaw, got, tt.want)
			}
		})
	}
}

func TestParseECC(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{
			name: "supported",
			html: `<tr><td>ECC Memory Supported</td><td>Yes</td></tr>`,
			want: true,
		},
		{
			name: "explicitly unsupported",
			html: `<tr><td>ECC Memory Supported</td><td>No</td></tr>`,
			want: false,
		},
		{
			name: "field absent means no ecc",
			html: `<tr><td>Max Memory Size</td><td>128 GB</td></tr>`,
			want: false,
		},
		{
			name: "json rendered value",
			html: `{"label":"ECC Memory Supported","value":"Yes"}`,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseECC(tt.html); got != tt.want {
				t.Errorf("ParseECC() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFeaturesDropsUnresolved(t *testing.T) {
	results := []Result{
		{CPURaw: "E-2144G", ECCSupport: true, Found: true},
		{CPURaw: "mystery part", Found: false},
		{CPURaw: "i5-8500", ECCSupport: false, Found: true},
	}

	features := Features(results)
	if len(features) != 2 {
		t.Fatalf("Features() returned %d rows, want 2", len(features))
	}

	if features[0].CPURaw != "E-2144G" || !features[0].ECCSupport {
		t.Errorf("features[0] = %+v, want E-2144G with ECC", features[0])
	}
}
