package pipeline

import (
	"regexp"
	"strconv"
)

// Classification is the result of classifying one raw CPU label. All
// fields are independently nullable: an unmatched label still produces
// a classification (all nil) and the row is still emitted, since
// unmatched CPUs are curated by hand later rather than rejected.
type Classification struct {
	Architecture *string
	Codename     *string
	ReleaseYear  *int
	Generation   *int
	Brand        *string
	Model        *string
}

// CPUClassifier maps raw CPU labels to microarchitecture metadata via
// the ordered pattern cascade, and extracts brand/model display fields
// in an independent pass. Immutable after construction; safe for
// concurrent use.
type CPUClassifier struct {
	rules        []PatternRule
	brandPattern *regexp.Regexp
	modelPattern *regexp.Regexp
	ultraPattern *regexp.Regexp
	genPattern   *regexp.Regexp
}

// NewCPUClassifier creates a classifier over the default pattern
// table.
func NewCPUClassifier() *CPUClassifier {
	return NewCPUClassifierWithRules(DefaultPatterns())
}

// NewCPUClassifierWithRules creates a classifier over an injected rule
// table. The table is evaluated in the given order.
func NewCPUClassifierWithRules(rules []PatternRule) *CPUClassifier {
	return &CPUClassifier{
		rules:        rules,
		brandPattern: regexp.MustCompile(`(i[3579]|Ultra [3579])`),
		// Model is everything between the brand dash and the next
		// space, e.g. "i5-8500" in "Intel(R) Core(TM) i5-8500 CPU".
		modelPattern: regexp.MustCompile(`i\d-(\S+)`),
		ultraPattern: regexp.MustCompile(`Ultra \d (\d+[A-Z]?)`),
		genPattern:   regexp.MustCompile(`\d{4,5}`),
	}
}

// Classify maps a raw CPU label to (architecture, codename, release
// year, generation) plus brand/model display fields. The first rule
// whose pattern matches anywhere in the label wins; a matched rule is
// authoritative for the generation even when it carries none, so that
// e.g. a Jasper Lake N5105 does not get a fabricated "generation 5"
// from the numeric fallback.
func (c *CPUClassifier) Classify(cpuRaw string) Classification {
	out := Classification{
		Brand: c.extractBrand(cpuRaw),
		Model: c.extractModel(cpuRaw),
	}

	for i := range c.rules {
		rule := &c.rules[i]
		if !rule.Matches(cpuRaw) {
			continue
		}

		arch := rule.Architecture
		out.Architecture = &arch

		if rule.Codename != "" {
			codename := rule.Codename
			out.Codename = &codename
		}

		if rule.ReleaseYear != 0 {
			year := rule.ReleaseYear
			out.ReleaseYear = &year
		}

		if rule.Generation != nil {
			g := *rule.Generation
			out.Generation = &g
		}

		return out
	}

	// No rule matched: approximate the generation from the model
	// number instead.
	out.Generation = c.fallbackGeneration(out.Model)

	return out
}

// extractBrand pulls the core-tier label (i3/i5/i7/i9 or Ultra N).
func (c *CPUClassifier) extractBrand(cpuRaw string) *string {
	m := c.brandPattern.FindString(cpuRaw)
	if m == "" {
		return nil
	}

	return &m
}

// extractModel pulls the model number for display. Classic Core parts
// carry it after the brand dash; Ultra parts carry it as a bare
// three-digit number with an optional letter.
func (c *CPUClassifier) extractModel(cpuRaw string) *string {
	if m := c.modelPattern.FindStringSubmatch(cpuRaw); m != nil {
		return &m[1]
	}

	if m := c.ultraPattern.FindStringSubmatch(cpuRaw); m != nil {
		return &m[1]
	}

	return nil
}

// fallbackGeneration extracts the first 4-5 digit run from the model
// string and drops its trailing three digits, leaving the leading one
// or two as the generation. A model without such a run yields nil,
// never a guessed value.
func (c *CPUClassifier) fallbackGeneration(model *string) *int {
	if model == nil {
		return nil
	}

	run := c.genPattern.FindString(*model)
	if run == "" {
		return nil
	}

	g, err := strconv.Atoi(run[:len(run)-3])
	if err != nil {
		return nil
	}

	return &g
}
