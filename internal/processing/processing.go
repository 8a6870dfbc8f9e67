/*
Package processing provides the text-level helpers shared by every fetch
strategy: CVE extraction, keyword severity inference, HTML stripping, summary
capping and item deduplication.
*/
package processing

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
)

// MaxSummaryLen caps item summaries at creation to bound the synthesis payload.
const MaxSummaryLen = 500

var cveRegex = regexp.MustCompile(`(?i)CVE-\d{4}-\d{4,7}`)

// ExtractCVEs returns the deduplicated, uppercased CVE identifiers found in
// text, sorted for deterministic output. Only syntax is checked; nonexistent
// but well-formed IDs pass through.
func ExtractCVEs(text string) []string {
	if text == "" {
		return nil
	}
	matches := cveRegex.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	var cves []string
	for _, m := range matches {
		upper := strings.ToUpper(m)
		if _, ok := seen[upper]; !ok {
			seen[upper] = struct{}{}
			cves = append(cves, upper)
		}
	}
	sort.Strings(cves)
	return cves
}

// severityKeywords is the ordered (keyword, severity) table used for keyword
// inference. English and Spanish markers are checked together, in descending
// severity order; the first match wins. "CRÍTIC" covers crítica/crítico and
// the unaccented "CRITICA" also matches inside "CRITICAL".
var severityKeywords = []struct {
	keyword  string
	severity string
}{
	{"CRITICAL", types.SeverityCritical},
	{"CRÍTIC", types.SeverityCritical},
	{"CRITICA", types.SeverityCritical},
	{"HIGH", types.SeverityHigh},
	{"ALTA", types.SeverityHigh},
	{"MEDIUM", types.SeverityMedium},
	{"MEDIA", types.SeverityMedium},
	{"LOW", types.SeverityLow},
	{"BAJA", types.SeverityLow},
	{"INFO", types.SeverityInfo},
}

// InferSeverity scans text for severity keywords and returns the most severe
// level whose keyword appears, or UNKNOWN when none does.
func InferSeverity(text string) string {
	upper := strings.ToUpper(text)
	for _, entry := range severityKeywords {
		if strings.Contains(upper, entry.keyword) {
			return entry.severity
		}
	}
	return types.SeverityUnknown
}

// StripHTML removes markup tags and squeezes whitespace.
func StripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// CapSummary strips markup from raw text and bounds it to MaxSummaryLen.
func CapSummary(raw string) string {
	return Truncate(StripHTML(raw), MaxSummaryLen)
}

// Fingerprint computes the content identity of an item as the md5 digest of
// its URL and title.
func Fingerprint(url, title string) string {
	sum := md5.Sum([]byte(url + "_" + title))
	return hex.EncodeToString(sum[:])
}

// Deduplicate drops items without a URL and collapses items sharing a
// (url, title) fingerprint, keeping the first occurrence in input order.
func Deduplicate(items []types.NewsItem) []types.NewsItem {
	seen := make(map[string]struct{}, len(items))
	deduped := make([]types.NewsItem, 0, len(items))

	for _, item := range items {
		if item.URL == "" {
			continue
		}
		fp := Fingerprint(item.URL, item.Title)
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		deduped = append(deduped, item)
	}
	return deduped
}
