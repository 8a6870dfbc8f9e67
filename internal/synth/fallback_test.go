package synth

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
)

func TestFallbackRouting(t *testing.T) {
	items := []types.NewsItem{
		{Title: "medium vuln", URL: "https://a/1", Severity: types.SeverityMedium, SourceName: "A"},
		{Title: "critical vuln", URL: "https://a/2", Severity: types.SeverityCritical, SourceName: "A"},
		{Title: "regional critical", URL: "https://b/1", Severity: types.SeverityCritical, SourceName: "B", Region: types.RegionLatam, Language: "es"},
		{Title: "high vuln", URL: "https://a/3", Severity: types.SeverityHigh, SourceName: "A"},
		{Title: "unknown item", URL: "https://a/4", Severity: types.SeverityUnknown, SourceName: "A"},
	}

	got := Fallback(items, time.UTC)

	// Severity ordering within sections, regional items stay regional even
	// when critical.
	require.Len(t, got.CriticalAlerts, 2)
	require.Equal(t, "critical vuln", got.CriticalAlerts[0].Title)
	require.Equal(t, "high vuln", got.CriticalAlerts[1].Title)

	require.Len(t, got.LatamIntelligence, 1)
	require.Equal(t, "regional critical", got.LatamIntelligence[0].Title)
	require.Equal(t, "es", got.LatamIntelligence[0].Language)

	require.Len(t, got.VulnerabilitiesAndPatches, 2)
	require.Equal(t, "medium vuln", got.VulnerabilitiesAndPatches[0].Title)

	require.Equal(t, RawSummaryMarker, got.ExecutiveSummary)
	require.Contains(t, got.WeekLabel, "(RAW DIGEST MODE)")
	require.NotNil(t, got.BreachesAndIncidents)
	require.Empty(t, got.BreachesAndIncidents)
	require.NotNil(t, got.RecommendedActions)
}

func TestFallbackSectionCap(t *testing.T) {
	var items []types.NewsItem
	for i := 0; i < 12; i++ {
		items = append(items, types.NewsItem{
			Title:    fmt.Sprintf("vuln %d", i),
			URL:      fmt.Sprintf("https://a/%d", i),
			Severity: types.SeverityMedium,
		})
	}

	got := Fallback(items, time.UTC)
	require.Len(t, got.VulnerabilitiesAndPatches, 5)
	// Stats still cover the full item set, not the capped sections.
	require.Equal(t, 12, got.Stats.TotalItemsAnalyzed)
	require.Equal(t, 12, got.Stats.MediumCount)
}

func TestFallbackEmpty(t *testing.T) {
	got := Fallback(nil, time.UTC)

	require.Empty(t, got.CriticalAlerts)
	require.NotNil(t, got.CriticalAlerts)
	require.Empty(t, got.LatamIntelligence)
	require.Zero(t, got.Stats.TotalItemsAnalyzed)
	require.Zero(t, got.Stats.SourcesScraped)
}

func TestComputeStats(t *testing.T) {
	items := []types.NewsItem{
		{SourceName: "A", Severity: types.SeverityCritical, CVEIDs: []string{"CVE-2025-1111", "CVE-2025-2222"}},
		{SourceName: "A", Severity: types.SeverityHigh, CVEIDs: []string{"CVE-2025-1111"}},
		{SourceName: "B", Severity: types.SeverityMedium},
		{SourceName: "C", Severity: types.SeverityUnknown},
	}

	stats := ComputeStats(items)
	require.Equal(t, 4, stats.TotalItemsAnalyzed)
	require.Equal(t, 1, stats.CriticalCount)
	require.Equal(t, 1, stats.HighCount)
	require.Equal(t, 1, stats.MediumCount)
	require.Equal(t, 3, stats.SourcesScraped)
	require.Equal(t, 2, stats.CVEsIdentified)
}
