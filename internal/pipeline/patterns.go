package pipeline

import "regexp"

// PatternRule maps a CPU-label regex to a microarchitecture. Rules are
// evaluated in table order and the first match wins, so order is part
// of the data: suffix-qualified patterns (mobile G parts, Xeon version
// suffixes) must sit above the bare numeric fallbacks that share their
// digit ranges. A nil Generation means the family has no meaningful
// generation number and none should be invented for it.
type PatternRule struct {
	re           *regexp.Regexp
	Pattern      string
	Architecture string
	Codename     string
	ReleaseYear  int
	Generation   *int
}

// Matches reports whether the rule's pattern matches anywhere in the
// raw CPU label.
func (r *PatternRule) Matches(cpuRaw string) bool {
	return r.re.MatchString(cpuRaw)
}

func gen(n int) *int {
	return &n
}

// DefaultPatterns returns the curated classification cascade for Intel
// CPUs. The table is compiled once and shared read-only; callers must
// not reorder or mutate it.
func DefaultPatterns() []PatternRule {
	rules := []PatternRule{
		// Core i3/i5/i7/i9 desktop and mobile families.
		{Pattern: `i[3579]-2\d{3}`, Architecture: "Sandy Bridge", Codename: "SNB", ReleaseYear: 2011, Generation: gen(2)},
		{Pattern: `i[3579]-3\d{3}`, Architecture: "Ivy Bridge", Codename: "IVB", ReleaseYear: 2012, Generation: gen(3)},
		{Pattern: `i[3579]-4\d{3}`, Architecture: "Haswell", Codename: "HSW", ReleaseYear: 2013, Generation: gen(4)},
		{Pattern: `i[3579]-5\d{3}`, Architecture: "Broadwell", Codename: "BDW", ReleaseYear: 2014, Generation: gen(5)},
		{Pattern: `i[3579]-6\d{3}`, Architecture: "Skylake", Codename: "SKL", ReleaseYear: 2015, Generation: gen(6)},
		{Pattern: `i[3579]-7\d{3}`, Architecture: "Kaby Lake", Codename: "KBL", ReleaseYear: 2017, Generation: gen(7)},
		{Pattern: `i[3579]-8\d{3}`, Architecture: "Coffee Lake", Codename: "CFL", ReleaseYear: 2018, Generation: gen(8)},
		{Pattern: `i[3579]-9\d{3}`, Architecture: "Coffee Lake Refresh", Codename: "CFL-R", ReleaseYear: 2019, Generation: gen(9)},
		// The mobile G-suffix parts share the 10xxx/11xxx ranges with
		// desktop parts, so they must be checked first.
		{Pattern: `i[3579]-10\d{2}G`, Architecture: "Ice Lake", Codename: "ICL", ReleaseYear: 2019, Generation: gen(10)},
		{Pattern: `i[3579]-10\d{3}[A-Z]?`, Architecture: "Comet Lake", Codename: "CML", ReleaseYear: 2020, Generation: gen(10)},
		{Pattern: `i[3579]-11\d{2}G`, Architecture: "Tiger Lake", Codename: "TGL", ReleaseYear: 2020, Generation: gen(11)},
		{Pattern: `i[3579]-11\d{3}`, Architecture: "Rocket Lake", Codename: "RKL", ReleaseYear: 2021, Generation: gen(11)},
		{Pattern: `i[3579]-12\d{3}`, Architecture: "Alder Lake", Codename: "ADL", ReleaseYear: 2021, Generation: gen(12)},
		{Pattern: `i[3579]-13\d{3}`, Architecture: "Raptor Lake", Codename: "RPL", ReleaseYear: 2022, Generation: gen(13)},
		{Pattern: `i[3579]-14\d{3}`, Architecture: "Raptor Lake Refresh", Codename: "RPL-R", ReleaseYear: 2023, Generation: gen(14)},

		// Core Ultra series 1 and 2. Series 2 splits desktop (K/F/S)
		// from mobile (V/U) on the trailing letter.
		{Pattern: `Ultra [3579] 1\d{2}[HUP]?`, Architecture: "Meteor Lake", Codename: "MTL", ReleaseYear: 2023, Generation: gen(1)},
		{Pattern: `Ultra [3579] 2\d{2}[KFS]`, Architecture: "Arrow Lake", Codename: "ARL", ReleaseYear: 2024, Generation: gen(2)},
		{Pattern: `Ultra [3579] 2\d{2}[VU]`, Architecture: "Lunar Lake", Codename: "LNL", ReleaseYear: 2024, Generation: gen(2)},

		// Xeon E3 version suffixes pin the microarchitecture; the
		// generic E3 pattern below them catches the rest.
		{Pattern: `Xeon.*E3-\d{4}\s*v6`, Architecture: "Kaby Lake", Codename: "KBL", ReleaseYear: 2017, Generation: gen(7)},
		{Pattern: `Xeon.*E3-\d{4}\s*v5`, Architecture: "Skylake", Codename: "SKL", ReleaseYear: 2015, Generation: gen(6)},
		{Pattern: `Xeon.*E3-\d{4}\s*v4`, Architecture: "Broadwell", Codename: "BDW", ReleaseYear: 2014, Generation: gen(5)},
		{Pattern: `Xeon.*E3-\d{4}\s*v3`, Architecture: "Haswell", Codename: "HSW", ReleaseYear: 2013, Generation: gen(4)},
		{Pattern: `Xeon.*E3-1[23]\d{2}`, Architecture: "Xeon E3", ReleaseYear: 2015},

		// Xeon E, with and without the Xeon prefix.
		{Pattern: `Xeon.*E-2[123]\d{2}`, Architecture: "Xeon E", Codename: "CFL", ReleaseYear: 2018, Generation: gen(8)},
		{Pattern: `E-2[123]\d{2}G?`, Architecture: "Xeon E", Codename: "CFL", ReleaseYear: 2018, Generation: gen(8)},

		// Pentium and Celeron desktop parts.
		{Pattern: `Pentium.*G[567]\d{3}`, Architecture: "Pentium Gold", Codename: "CFL", ReleaseYear: 2018, Generation: gen(8)},
		{Pattern: `G4\d{3}T?`, Architecture: "Coffee Lake", Codename: "CFL", ReleaseYear: 2018, Generation: gen(8)},
		{Pattern: `Celeron.*G[4567]\d{3}`, Architecture: "Celeron", ReleaseYear: 2017},

		// Low-power N and J series.
		{Pattern: `N[456]\d{3}`, Architecture: "Jasper Lake", Codename: "JSL", ReleaseYear: 2021},
		{Pattern: `N[12]\d{2}`, Architecture: "Alder Lake-N", Codename: "ADL-N", ReleaseYear: 2023, Generation: gen(12)},
		{Pattern: `N\d{2}$`, Architecture: "Alder Lake-N", Codename: "ADL-N", ReleaseYear: 2023, Generation: gen(12)},
		{Pattern: `i3-N\d{3}`, Architecture: "Alder Lake-N", Codename: "ADL-N", ReleaseYear: 2023, Generation: gen(12)},
		{Pattern: `J[456]\d{3}`, Architecture: "Gemini Lake", Codename: "GLK", ReleaseYear: 2017},

		// Core M.
		{Pattern: `m3-\d{4}Y`, Architecture: "Amber Lake", Codename: "AML", ReleaseYear: 2018, Generation: gen(8)},
		{Pattern: `M-5Y\d{2}`, Architecture: "Broadwell", Codename: "BDW", ReleaseYear: 2014, Generation: gen(5)},

		// Pentium/Celeron Silver.
		{Pattern: `Pentium.*Silver`, Architecture: "Gemini Lake", Codename: "GLK", ReleaseYear: 2017},
		{Pattern: `Silver.*\d{4}`, Architecture: "Gemini Lake", Codename: "GLK", ReleaseYear: 2017},

		// Arc discrete GPUs occasionally show up in the CPU column.
		{Pattern: `Arc A\d{3}`, Architecture: "Arc Alchemist", Codename: "ACM", ReleaseYear: 2022},

		// "Intel Processor N100" style branding.
		{Pattern: `Processor N\d{3}`, Architecture: "Alder Lake-N", Codename: "ADL-N", ReleaseYear: 2023, Generation: gen(12)},
	}

	for i := range rules {
		rules[i].re = regexp.MustCompile(rules[i].Pattern)
	}

	return rules
}
