package processing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/processing"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
)

func TestExtractCVEs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "no cves", input: "routine maintenance notice", want: nil},
		{name: "single", input: "Patch for CVE-2025-12345 released", want: []string{"CVE-2025-12345"}},
		{name: "lowercase normalized", input: "see cve-2025-0001", want: []string{"CVE-2025-0001"}},
		{name: "dedup and sort", input: "CVE-2025-2222 then CVE-2025-1111 then cve-2025-2222", want: []string{"CVE-2025-1111", "CVE-2025-2222"}},
		{name: "seven digit id", input: "CVE-2024-1234567", want: []string{"CVE-2024-1234567"}},
		{name: "too short id ignored", input: "CVE-2024-123", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, processing.ExtractCVEs(tt.input))
		})
	}
}

func TestInferSeverity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "critical english", input: "Critical RCE in product", want: types.SeverityCritical},
		{name: "critical spanish accented", input: "Vulnerabilidad crítica en el servicio", want: types.SeverityCritical},
		{name: "most severe wins", input: "low impact but HIGH severity overall", want: types.SeverityHigh},
		{name: "spanish high", input: "Severidad alta reportada", want: types.SeverityHigh},
		{name: "medium", input: "Medium severity advisory", want: types.SeverityMedium},
		{name: "spanish low", input: "prioridad baja", want: types.SeverityLow},
		{name: "info", input: "informational update", want: types.SeverityInfo},
		{name: "no marker", input: "scheduled release notes", want: types.SeverityUnknown},
		{name: "empty", input: "", want: types.SeverityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := processing.InferSeverity(tt.input); got != tt.want {
				t.Fatalf("InferSeverity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripHTML(t *testing.T) {
	got := processing.StripHTML("<p>Hello <b>world</b></p>\n\n  again")
	require.Equal(t, "Hello world again", got)

	require.Equal(t, "plain", processing.StripHTML("plain"))
	require.Equal(t, "", processing.StripHTML("<div><span></span></div>"))
}

func TestCapSummary(t *testing.T) {
	long := strings.Repeat("ñ", processing.MaxSummaryLen+100)
	got := processing.CapSummary(long)
	require.Equal(t, processing.MaxSummaryLen, len([]rune(got)))

	short := "<b>short</b> summary"
	require.Equal(t, "short summary", processing.CapSummary(short))
}

func TestFingerprintStable(t *testing.T) {
	fp1 := processing.Fingerprint("https://example.com/a", "Title")
	fp2 := processing.Fingerprint("https://example.com/a", "Title")
	require.Equal(t, fp1, fp2)
	require.Len(t, fp1, 32)

	require.NotEqual(t, fp1, processing.Fingerprint("https://example.com/b", "Title"))
	require.NotEqual(t, fp1, processing.Fingerprint("https://example.com/a", "Other"))
}

func TestDeduplicate(t *testing.T) {
	items := []types.NewsItem{
		{URL: "https://example.com/1", Title: "First", SourceName: "A"},
		{URL: "", Title: "No URL"},
		{URL: "https://example.com/1", Title: "First", SourceName: "B"},
		{URL: "https://example.com/1", Title: "Different title"},
		{URL: "https://example.com/2", Title: "Second"},
	}

	got := processing.Deduplicate(items)
	require.Len(t, got, 3)
	require.Equal(t, "A", got[0].SourceName)
	require.Equal(t, "Different title", got[1].Title)
	require.Equal(t, "https://example.com/2", got[2].URL)
}

func TestDeduplicateEmpty(t *testing.T) {
	require.Empty(t, processing.Deduplicate(nil))
	require.Empty(t, processing.Deduplicate([]types.NewsItem{{Title: "urlless"}}))
}
