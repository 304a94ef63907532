package pipeline

// Data-quality flag symbols. Flags are advisory annotations; they
// never cause a record to be rejected or its values to be altered.
const (
	FlagPowerTooLow         = "power_too_low"
	FlagEfficiencyOutlier   = "efficiency_outlier"
	FlagArrowLakePowerIssue = "arrow_lake_power_issue"
)

// Default flagging thresholds. The efficiency cap sits above the
// highest legitimate reading observed so far (an N150 at 327.9 fps/W).
const (
	DefaultMinPlausibleWatts = 3.0
	DefaultMaxFPSPerWatt     = 400.0
)

// arrowLakeArchitecture has a known systematic power measurement bug;
// its records carry a standing warning flag.
const arrowLakeArchitecture = "Arrow Lake"

// FPSPerWatt derives the efficiency metric. It is nil exactly when the
// normalized watts reading is nil; the normalizer guarantees a non-nil
// reading is strictly positive.
func FPSPerWatt(avgFPS float64, avgWatts *float64) *float64 {
	if avgWatts == nil || *avgWatts <= 0 {
		return nil
	}

	v := avgFPS / *avgWatts

	return &v
}

// QualityFlagger annotates records whose normalized values look like
// measurement errors.
type QualityFlagger struct {
	minWatts      float64
	maxFPSPerWatt float64
}

// NewQualityFlagger creates a flagger with the default thresholds.
func NewQualityFlagger() *QualityFlagger {
	return NewQualityFlaggerWithThresholds(DefaultMinPlausibleWatts, DefaultMaxFPSPerWatt)
}

// NewQualityFlaggerWithThresholds creates a flagger with custom
// thresholds.
func NewQualityFlaggerWithThresholds(minWatts, maxFPSPerWatt float64) *QualityFlagger {
	return &QualityFlagger{
		minWatts:      minWatts,
		maxFPSPerWatt: maxFPSPerWatt,
	}
}

// Flags evaluates every flag condition independently and returns the
// set that holds, nil when none do. Conditions on nullable inputs
// require a non-nil value: a missing watts reading is not "too low".
func (f *QualityFlagger) Flags(avgWatts, fpsPerWatt *float64, architecture *string) []string {
	var flags []string

	if avgWatts != nil && *avgWatts < f.minWatts {
		flags = append(flags, FlagPowerTooLow)
	}

	if fpsPerWatt != nil && *fpsPerWatt > f.maxFPSPerWatt {
		flags = append(flags, FlagEfficiencyOutlier)
	}

	if architecture != nil && *architecture == arrowLakeArchitecture {
		flags = append(flags, FlagArrowLakePowerIssue)
	}

	return flags
}
