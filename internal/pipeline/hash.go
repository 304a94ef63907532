package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// nullToken stands in for a nil watts reading in the hash preimage so
// that "no reading" hashes differently from every real reading.
const nullToken = "null"

// ResultHash computes the deduplication key for one observation: a
// sha256 hex digest over the pipe-delimited concatenation of the raw
// CPU label, test name, test file, and the normalized bitrate, fps and
// watts values. Two observations reporting numerically identical
// outcomes collapse to the same key no matter who submitted them,
// when, or through which ingestion path. Watts must already have been
// through the normalizer's null/range rules.
func ResultHash(cpuRaw, testName, testFile string, bitrateKbps int, avgFPS float64, avgWatts *float64) string {
	watts := nullToken
	if avgWatts != nil {
		watts = strconv.FormatFloat(*avgWatts, 'g', -1, 64)
	}

	preimage := strings.Join([]string{
		cpuRaw,
		testName,
		testFile,
		strconv.Itoa(bitrateKbps),
		strconv.FormatFloat(avgFPS, 'g', -1, 64),
		watts,
	}, "|")

	sum := sha256.Sum256([]byte(preimage))

	return hex.EncodeToString(sum[:])
}
