package pipeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"qsbench/internal/models"
)

// Watts readings outside this band are sensor or measurement
// artifacts, not legitimate values, and must not reach derived
// metrics.
const maxPlausibleWatts = 500.0

// Normalization errors. Only the three required fields can fail; the
// nullable fields degrade to nil instead.
var (
	ErrInvalidBitrate = errors.New("invalid bitrate")
	ErrInvalidTime    = errors.New("invalid time")
	ErrInvalidFPS     = errors.New("invalid avg_fps")
)

// NormalizedFields is the typed projection of a raw row. BitrateKbps,
// TimeSeconds and AvgFPS are required; AvgSpeed and AvgWatts are nil
// when the source text is absent, a sentinel, unparseable, or (for
// watts) outside the plausible range.
type NormalizedFields struct {
	BitrateKbps int
	TimeSeconds float64
	AvgFPS      float64
	AvgSpeed    *float64
	AvgWatts    *float64
}

// FieldNormalizer converts raw textual fields to typed values under
// the per-field unit and validity rules.
type FieldNormalizer struct{}

// NewFieldNormalizer creates a new normalizer instance.
func NewFieldNormalizer() *FieldNormalizer {
	return &FieldNormalizer{}
}

// Normalize types all fields of a raw row. An error means one of the
// required fields did not parse and the row cannot become a record;
// the caller drops the row and keeps going.
func (n *FieldNormalizer) Normalize(row models.RawRow) (NormalizedFields, error) {
	var out NormalizedFields

	bitrate, err := n.NormalizeBitrate(row.Bitrate)
	if err != nil {
		return out, err
	}

	seconds, err := n.NormalizeTime(row.Time)
	if err != nil {
		return out, err
	}

	fps, err := n.NormalizeFPS(row.AvgFPS)
	if err != nil {
		return out, err
	}

	out.BitrateKbps = bitrate
	out.TimeSeconds = seconds
	out.AvgFPS = fps
	out.AvgSpeed = n.NormalizeSpeed(row.AvgSpeed)
	out.AvgWatts = n.NormalizeWatts(row.AvgWatts)

	return out, nil
}

// NormalizeBitrate strips the kb/s unit suffix and parses an integer.
func (n *FieldNormalizer) NormalizeBitrate(s string) (int, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "kb/s"))

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBitrate, s)
	}

	return v, nil
}

// NormalizeTime strips the trailing s unit and parses seconds. The
// null sentinels are rejected here rather than parsed: ParseFloat
// would happily accept "nan".
func (n *FieldNormalizer) NormalizeTime(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "s"))
	if isNullSentinel(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return v, nil
}

// NormalizeFPS parses the average frames per second.
func (n *FieldNormalizer) NormalizeFPS(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if isNullSentinel(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFPS, s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFPS, s)
	}

	return v, nil
}

// NormalizeSpeed strips the trailing x multiplier and parses a float;
// sentinels and parse failures yield nil.
func (n *FieldNormalizer) NormalizeSpeed(s string) *float64 {
	s = strings.TrimSpace(s)
	if isNullSentinel(s) || s == "x" {
		return nil
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "x"), 64)
	if err != nil {
		return nil
	}

	return &v
}

// NormalizeWatts parses the average power draw. Beyond the usual
// sentinel handling it applies the plausibility band: the value must
// be strictly positive and at most 500 W, otherwise it is treated as
// a measurement artifact and nulled.
func (n *FieldNormalizer) NormalizeWatts(s string) *float64 {
	s = strings.TrimSpace(s)
	if isNullSentinel(s) {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	if v <= 0 || v > maxPlausibleWatts {
		return nil
	}

	return &v
}

// isNullSentinel reports whether a field value is one of the textual
// stand-ins for "no reading".
func isNullSentinel(s string) bool {
	return s == "" || strings.EqualFold(s, "N/A") || strings.EqualFold(s, "nan")
}
