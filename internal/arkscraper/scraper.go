// Package arkscraper looks up per-CPU ECC memory support on Intel ARK
// with a headless browser. ARK's search is rendered client-side, so a
// plain HTTP fetch sees an empty shell.
package arkscraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"qsbench/internal/logger"
	"qsbench/internal/models"
)

const (
	searchURLFormat = "https://www.intel.com/content/www/us/en/search.html#q=%s&cf-tabfilter=Products"

	// specLinkSelector matches the spec-sheet link of a search result.
	specLinkSelector = `a[href*="/products/sku/"][href*="/specifications.html"]`

	// renderWait gives the search page time to render its results.
	renderWait = 3 * time.Second

	// lookupDelay paces successive lookups.
	lookupDelay = 500 * time.Millisecond
)

// searchOverrides maps raw CPU labels whose verbatim text confuses the
// ARK search to a query that finds the right part.
var searchOverrides = map[string]string{
	"E-2144G":            "E-2144G",
	"E-2288G":            "E-2288G",
	"E3-1245v6":          "E3-1245 v6",
	"Intel Xeon E-2386G": "E-2386G",
	"Intel(R) Core(TM) i7-10700K CPU @ 3.80GHz": "i7-10700K",
	"Intel Celeron J4005":        "J4005",
	"Intel Celeron N5105":        "N5105",
	"Intel N100":                 "N100",
	"Intel N150":                 "N150",
	"Intel Pentium Silver J5005": "J5005",
	"Ultra 5 225":                "Core Ultra 5 225",
	"i3-N305":                    "N305",
}

// Result is the outcome of one lookup. Found is false when the search
// produced no usable spec page; ECCSupport is meaningless then.
type Result struct {
	CPURaw     string
	ECCSupport bool
	Found      bool
	Note       string
}

// Scraper drives a headless browser session against ARK.
type Scraper struct {
	log      *logger.Logger
	headless bool
}

// New creates a scraper.
func New(log *logger.Logger, headless bool) *Scraper {
	return &Scraper{log: log, headless: headless}
}

// SearchTerm returns the ARK query for a raw CPU label.
func SearchTerm(cpuRaw string) string {
	if term, ok := searchOverrides[cpuRaw]; ok {
		return term
	}

	return cpuRaw
}

// LookupAll checks every label in one browser session, pacing requests.
// Labels that cannot be resolved are reported with Found false rather
// than aborting the run.
func (s *Scraper) LookupAll(ctx context.Context, labels []string) ([]Result, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.headless),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	results := make([]Result, 0, len(labels))

	for i, label := range labels {
		s.log.Info("looking up ecc support", "cpu", label, "progress", fmt.Sprintf("%d/%d", i+1, len(labels)))

		res := s.lookup(browserCtx, label)
		results = append(results, res)

		s.log.Debug("lookup finished", "cpu", label, "note", res.Note)

		select {
		case <-time.After(lookupDelay):
		case <-ctx.Done():
			return results, ctx.Err()
		}
	}

	return results, nil
}

// Features converts the found results to feature rows, dropping the
// unresolved ones.
func Features(results []Result) []models.CPUFeature {
	var features []models.CPUFeature

	for _, r := range results {
		if !r.Found {
			continue
		}

		features = append(features, models.CPUFeature{CPURaw: r.CPURaw, ECCSupport: r.ECCSupport})
	}

	return features
}

// lookup resolves one label: search, open the first spec sheet, read
// the ECC field.
func (s *Scraper) lookup(ctx context.Context, cpuRaw string) Result {
	term := SearchTerm(cpuRaw)
	searchURL := fmt.Sprintf(searchURLFormat, url.QueryEscape(term))

	lookupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var searchHTML string

	err := chromedp.Run(lookupCtx,
		chromedp.Navigate(searchURL),
		chromedp.Sleep(renderWait),
		chromedp.OuterHTML("html", &searchHTML),
	)
	if err != nil {
		return Result{CPURaw: cpuRaw, Note: fmt.Sprintf("search failed: %v", err)}
	}

	if strings.Contains(searchHTML, "No results") && !strings.Contains(searchHTML, "Results 1") {
		return Result{CPURaw: cpuRaw, Note: fmt.Sprintf("no search results for %q", term)}
	}

	if !strings.Contains(searchHTML, "/products/sku/") {
		return Result{CPURaw: cpuRaw, Note: fmt.Sprintf("no spec links for %q", term)}
	}

	var specHTML string

	err = chromedp.Run(lookupCtx,
		chromedp.Click(specLinkSelector, chromedp.ByQuery),
		chromedp.Sleep(renderWait/2),
		chromedp.OuterHTML("html", &specHTML),
	)
	if err != nil {
		return Result{CPURaw: cpuRaw, Note: fmt.Sprintf("spec page failed: %v", err)}
	}

	return Result{
		CPURaw:     cpuRaw,
		ECCSupport: ParseECC(specHTML),
		Found:      true,
		Note:       "ok",
	}
}

// ParseECC reads the ECC verdict out of a spec sheet. A missing field
// means the part has no ECC support.
func ParseECC(specHTML string) bool {
	idx := strings.Index(specHTML, "ECC Memory Supported")
	if idx < 0 {
		return false
	}

	// The Yes/No value renders shortly after the field label.
	window := specHTML[idx:]
	if len(window) > 500 {
		window = window[:500]
	}

	return strings.Contains(window, ">Yes<") || strings.Contains(window, `"Yes"`)
}
