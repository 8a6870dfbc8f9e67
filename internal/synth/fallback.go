package synth

import (
	"fmt"
	"sort"
	"time"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/week"
)

// RawSummaryMarker marks a digest as deterministically built, not AI-generated.
const RawSummaryMarker = "RAW DIGEST - AI SYNTHESIS UNAVAILABLE."

// sectionCap bounds each fallback section for digest brevity.
const sectionCap = 5

// Fallback builds the deterministic digest used when the generative path is
// unavailable or exhausted. Items are sorted by severity; regionally-tagged
// items go to the regional section, remaining CRITICAL/HIGH items to the
// critical section, and everything else to the vulnerabilities section.
func Fallback(items []types.NewsItem, loc *time.Location) types.Digest {
	sorted := make([]types.NewsItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return types.SeverityRank(sorted[i].Severity) < types.SeverityRank(sorted[j].Severity)
	})

	var criticals, vulns, latam []types.DigestEntry
	for _, item := range sorted {
		entry := types.DigestEntry{
			Title:            item.Title,
			Severity:         item.Severity,
			Description:      item.Summary,
			CVEIDs:           item.CVEIDs,
			AffectedProducts: []string{},
			SourceName:       item.SourceName,
			SourceURL:        item.URL,
		}
		switch {
		case item.Region == types.RegionLatam:
			entry.Language = item.Language
			latam = append(latam, entry)
		case item.Severity == types.SeverityCritical || item.Severity == types.SeverityHigh:
			criticals = append(criticals, entry)
		default:
			vulns = append(vulns, entry)
		}
	}

	return types.Digest{
		WeekLabel:                 fmt.Sprintf("Week of %s (RAW DIGEST MODE)", week.DateRange(loc)),
		ExecutiveSummary:          RawSummaryMarker,
		CriticalAlerts:            capSection(criticals),
		VulnerabilitiesAndPatches: capSection(vulns),
		BreachesAndIncidents:      []types.DigestEntry{},
		LatamIntelligence:         capSection(latam),
		RecommendedActions:        []string{},
		Stats:                     ComputeStats(items),
	}
}

func capSection(entries []types.DigestEntry) []types.DigestEntry {
	if entries == nil {
		return []types.DigestEntry{}
	}
	if len(entries) > sectionCap {
		return entries[:sectionCap]
	}
	return entries
}

// ComputeStats derives the digest statistics block from the item set:
// severity counts, distinct source count and the union of all CVE sets.
func ComputeStats(items []types.NewsItem) types.DigestStats {
	srcSet := make(map[string]struct{})
	cveSet := make(map[string]struct{})
	stats := types.DigestStats{TotalItemsAnalyzed: len(items)}

	for _, item := range items {
		srcSet[item.SourceName] = struct{}{}
		for _, cve := range item.CVEIDs {
			cveSet[cve] = struct{}{}
		}
		switch item.Severity {
		case types.SeverityCritical:
			stats.CriticalCount++
		case types.SeverityHigh:
			stats.HighCount++
		case types.SeverityMedium:
			stats.MediumCount++
		}
	}

	stats.SourcesScraped = len(srcSet)
	stats.CVEsIdentified = len(cveSet)
	return stats
}
