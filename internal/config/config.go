/*
Package config loads runtime configuration from the environment, with an
optional .env file for local development.
*/
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the weekly pipeline.
type Config struct {
	GeminiAPIKey string
	GeminiModel  string

	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	Recipients []string
	SendEmail  bool

	Timezone string
	Location *time.Location

	OutputDir string
	LogLevel  string
	BindAddr  string
	CronSpec  string
}

// Load reads configuration from the environment. A .env file is loaded when
// present but is not required. A missing Gemini API key is valid; the
// pipeline then produces raw digests without AI synthesis.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		SMTPServer:   getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),
		FromEmail:    getEnv("FROM_EMAIL", ""),
		Recipients:   splitList(getEnv("RECIPIENTS", "")),
		SendEmail:    getEnvAsBool("SEND_EMAIL", true),
		Timezone:     getEnv("TIMEZONE", "America/Caracas"),
		OutputDir:    getEnv("OUTPUT_DIR", "./output"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		BindAddr:     getEnv("BIND_ADDR", ":8080"),
		CronSpec:     getEnv("CRON_SPEC", "0 8 * * 1"),
	}

	if cfg.FromEmail == "" {
		cfg.FromEmail = cfg.SMTPUser
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	cfg.Location = loc

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", cfg.OutputDir, err)
	}

	return cfg, nil
}

// EmailEnabled reports whether the configuration is complete enough to send
// email and sending has not been switched off.
func (c *Config) EmailEnabled() bool {
	return c.SendEmail && c.SMTPUser != "" && c.SMTPPass != "" && len(c.Recipients) > 0
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
