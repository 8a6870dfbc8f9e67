/*
Package types defines the data model shared across the collection, synthesis
and reporting stages: collected news items and the weekly digest.
*/
package types

import "time"

// Severity levels carried on collected items and digest entries.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"
	SeverityInfo     = "INFO"
	SeverityUnknown  = "UNKNOWN"
)

// Trust regions inherited from the source registry.
const (
	RegionGlobal = "global"
	RegionLatam  = "latam"
)

// NewsItem is the unit of collected intelligence. An item without a URL is
// never eligible for synthesis or digest inclusion.
type NewsItem struct {
	SourceName    string    `json:"source_name"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	URL           string    `json:"url"`
	PublishedDate time.Time `json:"published_date"`
	Severity      string    `json:"severity"`
	CVEIDs        []string  `json:"cve_ids"`
	Category      string    `json:"category"`
	Language      string    `json:"language"`
	Region        string    `json:"region"`
}

// SeverityRank orders severities for sorting, most severe first.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

// DigestEntry is a single categorized entry inside a Digest. SourceURL must
// match a URL from the item set that produced the digest; the verification
// stage drops entries that do not.
type DigestEntry struct {
	Title            string   `json:"title"`
	Severity         string   `json:"severity,omitempty"`
	Description      string   `json:"description"`
	Impact           string   `json:"impact,omitempty"`
	CVEIDs           []string `json:"cve_ids,omitempty"`
	AffectedProducts []string `json:"affected_products,omitempty"`
	SourceName       string   `json:"source_name"`
	SourceURL        string   `json:"source_url"`
	Language         string   `json:"language,omitempty"`
}

// DigestStats summarizes a week of collected items.
type DigestStats struct {
	TotalItemsAnalyzed int `json:"total_items_analyzed"`
	CriticalCount      int `json:"critical_count"`
	HighCount          int `json:"high_count"`
	MediumCount        int `json:"medium_count"`
	SourcesScraped     int `json:"sources_scraped"`
	CVEsIdentified     int `json:"cves_identified"`
}

// Digest is the structured weekly output produced by synthesis, consumed by
// the report renderers and then persisted only as rendered files.
type Digest struct {
	WeekLabel                 string        `json:"week_label"`
	ExecutiveSummary          string        `json:"executive_summary"`
	CriticalAlerts            []DigestEntry `json:"critical_alerts"`
	VulnerabilitiesAndPatches []DigestEntry `json:"vulnerabilities_and_patches"`
	BreachesAndIncidents      []DigestEntry `json:"breaches_and_incidents"`
	LatamIntelligence         []DigestEntry `json:"latam_venezuela_intelligence"`
	RecommendedActions        []string      `json:"recommended_actions"`
	Stats                     DigestStats   `json:"stats"`
}
