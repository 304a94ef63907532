package models

// Architecture is one row of the microarchitecture reference table.
// The pattern column mirrors the classifier's rule table so the
// frontend can reproduce the mapping; the remaining columns are
// curated metadata (codec capabilities, iGPU, physical design).
type Architecture struct {
	Pattern         string  `json:"pattern"`
	Architecture    string  `json:"architecture"`
	Codename        *string `json:"codename"`
	ReleaseYear     *int    `json:"release_year"`
	ReleaseQuarter  *string `json:"release_quarter"`
	SortOrder       int     `json:"sort_order"`
	H264Encode      bool    `json:"h264_encode"`
	HEVC8BitEncode  bool    `json:"hevc_8bit_encode"`
	HEVC10BitEncode bool    `json:"hevc_10bit_encode"`
	VP9Encode       bool    `json:"vp9_encode"`
	AV1Encode       bool    `json:"av1_encode"`
	IGPUName        *string `json:"igpu_name"`
	ProcessNm       *string `json:"process_nm"`
	Vendor          string  `json:"vendor"`
}

// CPUFeature is one row of the per-CPU feature side-table, keyed by
// the raw CPU label as submitted. Currently only ECC support.
type CPUFeature struct {
	CPURaw     string `json:"cpu_raw"`
	ECCSupport bool   `json:"ecc_support"`
}

// GenerationInsight holds the human-authored summary text for one CPU
// generation. The text is static editorial content, not derived data.
type GenerationInsight struct {
	Generation int    `json:"generation"`
	Headline   string `json:"headline"`
	Summary    string `json:"summary"`
	Pros       string `json:"pros"`
	Cons       string `json:"cons"`
	BestFor    string `json:"best_for"`
	VsPrevious string `json:"vs_previous"`
}
