/*
Package notify handles email delivery of the finished weekly report.
*/
package notify

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	gomail "gopkg.in/mail.v2"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
)

// EmailConfig holds SMTP configuration for sending the weekly report.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	Recipients []string
	Enabled    bool
}

// EmailSender delivers the weekly report via SMTP.
type EmailSender struct {
	cfg EmailConfig
	log *slog.Logger
}

// NewEmailSender creates a sender with the given SMTP configuration.
func NewEmailSender(cfg EmailConfig, log *slog.Logger) *EmailSender {
	return &EmailSender{cfg: cfg, log: log}
}

// SendReport emails the digest summary with the rendered report attached.
// Delivery failure is reported to the caller but must never fail the run.
func (s *EmailSender) SendReport(digest types.Digest, reportPath string) error {
	if !s.cfg.Enabled {
		s.log.Info("email sending disabled", "report", reportPath)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.FromEmail)
	m.SetHeader("To", s.cfg.Recipients...)
	m.SetHeader("Subject", fmt.Sprintf("Cyber Intel Weekly - %s", digest.WeekLabel))
	m.SetBody("text/plain", reportBody(digest))
	if reportPath != "" {
		m.Attach(reportPath)
	}

	dialer := gomail.NewDialer(s.cfg.SMTPServer, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPass)
	dialer.Timeout = 10 * time.Second

	if err := dialer.DialAndSend(m); err != nil {
		s.log.Error("failed to send report email", "recipients", strings.Join(s.cfg.Recipients, ","), "err", err)
		return err
	}

	s.log.Info("report email sent", "recipients", len(s.cfg.Recipients))
	return nil
}

func reportBody(digest types.Digest) string {
	var sb strings.Builder

	sb.WriteString(digest.WeekLabel + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")
	sb.WriteString(digest.ExecutiveSummary + "\n\n")

	sb.WriteString(fmt.Sprintf("Critical alerts: %d\n", len(digest.CriticalAlerts)))
	sb.WriteString(fmt.Sprintf("Vulnerabilities & patches: %d\n", len(digest.VulnerabilitiesAndPatches)))
	sb.WriteString(fmt.Sprintf("Breaches & incidents: %d\n", len(digest.BreachesAndIncidents)))
	sb.WriteString(fmt.Sprintf("LATAM intelligence: %d\n\n", len(digest.LatamIntelligence)))

	stats := digest.Stats
	sb.WriteString(fmt.Sprintf("Items analyzed: %d | Critical: %d | High: %d | CVEs: %d\n",
		stats.TotalItemsAnalyzed, stats.CriticalCount, stats.HighCount, stats.CVEsIdentified))
	sb.WriteString("\nThe full report is attached.\n")

	return sb.String()
}
