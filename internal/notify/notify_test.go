package notify

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
)

func TestSendReportDisabled(t *testing.T) {
	s := NewEmailSender(EmailConfig{Enabled: false}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, s.SendReport(types.Digest{WeekLabel: "2025-W35"}, "/tmp/report.html"))
}

func TestReportBody(t *testing.T) {
	digest := types.Digest{
		WeekLabel:        "Week of Aug 25 - Aug 31, 2025",
		ExecutiveSummary: "One critical advisory this week.",
		CriticalAlerts:   []types.DigestEntry{{Title: "RCE"}},
		Stats: types.DigestStats{
			TotalItemsAnalyzed: 10,
			CriticalCount:      1,
			HighCount:          2,
			CVEsIdentified:     4,
		},
	}

	body := reportBody(digest)
	require.Contains(t, body, "Week of Aug 25 - Aug 31, 2025")
	require.Contains(t, body, "One critical advisory this week.")
	require.Contains(t, body, "Critical alerts: 1")
	require.Contains(t, body, "Items analyzed: 10 | Critical: 1 | High: 2 | CVEs: 4")
	require.Contains(t, body, "attached")
}
