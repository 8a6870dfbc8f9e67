/*
Package report renders a Digest into the week's output artifacts: a
print-ready HTML report and a condensed plain-text summary. Rendering never
loses a week's digest: a template failure degrades to a structured JSON dump
at a related path.
*/
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
)

// Renderer writes digest artifacts under a fixed output directory.
type Renderer struct {
	outputDir string
	log       *slog.Logger
	tmpl      *template.Template
}

// NewRenderer creates a renderer with the default report template.
func NewRenderer(outputDir string, log *slog.Logger) *Renderer {
	t := template.Must(template.New("report").Funcs(template.FuncMap{
		"severityClass": severityClass,
		"joinCVEs":      joinCVEs,
	}).Parse(reportHTMLTemplate))
	return &Renderer{outputDir: outputDir, log: log, tmpl: t}
}

type reportData struct {
	Digest      types.Digest
	GeneratedAt string
}

// GenerateReport renders the print-ready report to
// report_cyber_<week>.html. On rendering failure it writes the digest as
// JSON to report_cyber_<week>.json instead, so the run always produces an
// artifact. It returns the path actually written.
func (r *Renderer) GenerateReport(digest types.Digest, weekLabel, generatedAt string) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, reportData{Digest: digest, GeneratedAt: generatedAt}); err != nil {
		r.log.Error("report template failed, writing structured dump instead", "err", err)
		return r.writeRawDump(digest, weekLabel)
	}

	path := filepath.Join(r.outputDir, fmt.Sprintf("report_cyber_%s.html", weekLabel))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		r.log.Error("failed to write report file, writing structured dump instead", "path", path, "err", err)
		return r.writeRawDump(digest, weekLabel)
	}

	r.log.Info("report generated", "path", path)
	return path, nil
}

func (r *Renderer) writeRawDump(digest types.Digest, weekLabel string) (string, error) {
	data, err := json.MarshalIndent(digest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal digest dump: %w", err)
	}
	path := filepath.Join(r.outputDir, fmt.Sprintf("report_cyber_%s.json", weekLabel))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write digest dump %s: %w", path, err)
	}
	return path, nil
}

// GenerateCondensed writes the bounded plain-text summary to
// whatsapp_cyber_<week>.txt and returns the path.
func (r *Renderer) GenerateCondensed(digest types.Digest, weekLabel string) (string, error) {
	text := CondensedText(digest)
	path := filepath.Join(r.outputDir, fmt.Sprintf("whatsapp_cyber_%s.txt", weekLabel))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write condensed summary %s: %w", path, err)
	}
	r.log.Info("condensed summary generated", "path", path, "chars", len([]rune(text)))
	return path, nil
}

func severityClass(severity string) string {
	switch severity {
	case types.SeverityCritical:
		return "sev-critical"
	case types.SeverityHigh:
		return "sev-high"
	case types.SeverityMedium:
		return "sev-medium"
	default:
		return "sev-low"
	}
}

func joinCVEs(cves []string) string {
	return strings.Join(cves, ", ")
}
