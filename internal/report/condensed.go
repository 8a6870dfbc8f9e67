package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
)

// MaxCondensedLen is the hard character cap of the condensed summary,
// including the truncation marker.
const MaxCondensedLen = 4000

const (
	condensedDivider  = "─────────────────────────────"
	truncationMarker  = "\n\n...[TRUNCATED ALERTS, SEE FULL REPORT]...\n\n_⚠️ Solo información de fuentes públicas verificadas._"
	truncatedBodyLen  = 3900 - 120 // leave room for the marker
	maxEntriesPerPart = 5
)

// CondensedText formats a digest as a short messaging-app summary. The
// result never exceeds MaxCondensedLen characters.
func CondensedText(digest types.Digest) string {
	var lines []string

	lines = append(lines,
		fmt.Sprintf("*🔐 CYBER INTEL WEEKLY — %s*", digest.WeekLabel),
		"_Powered by verified public sources only_",
		condensedDivider+"\n",
	)

	if len(digest.CriticalAlerts) > 0 {
		lines = append(lines, "*🚨 ALERTAS CRÍTICAS / CRITICAL ALERTS*")
		for i, alert := range digest.CriticalAlerts {
			if i >= maxEntriesPerPart {
				break
			}
			lines = append(lines, fmt.Sprintf("\n*%d. %s*", i+1, alert.Title))
			if alert.Severity != "" {
				lines = append(lines, fmt.Sprintf("Severidad: *%s*", alert.Severity))
			}
			if len(alert.CVEIDs) > 0 {
				lines = append(lines, "CVEs: `"+strings.Join(alert.CVEIDs, "`, `")+"`")
			}
			lines = append(lines, shorten(alert.Description, 150))
			lines = append(lines, "🔗 "+alert.SourceURL)
		}
		lines = append(lines, "\n"+condensedDivider+"\n")
	}

	if len(digest.LatamIntelligence) > 0 {
		lines = append(lines, "*🇻🇪 VENEZUELA / LATAM*\n")
		for i, item := range digest.LatamIntelligence {
			if i >= maxEntriesPerPart {
				break
			}
			lines = append(lines, "*"+item.Title+"*")
			lines = append(lines, shorten(item.Description, 150))
			lines = append(lines, "🔗 "+item.SourceURL+"\n")
		}
		lines = append(lines, condensedDivider+"\n")
	}

	lines = append(lines,
		"*📊 ESTADÍSTICAS DE LA SEMANA*",
		fmt.Sprintf("Total alertas: %d | Críticas: %d | CVEs: %d\n",
			digest.Stats.TotalItemsAnalyzed, digest.Stats.CriticalCount, digest.Stats.CVEsIdentified),
		condensedDivider,
		"_⚠️ Solo información de fuentes públicas verificadas._",
		"_No generado con información fabricada por IA._",
	)

	text := strings.Join(lines, "\n")
	if utf8.RuneCountInString(text) > MaxCondensedLen {
		text = string([]rune(text)[:truncatedBodyLen]) + truncationMarker
	}
	return text
}

func shorten(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
