package scheduler_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/scheduler"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	_, err := scheduler.New("not a cron spec", time.UTC, discardLogger(), func() {})
	require.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s, err := scheduler.New("0 8 * * 1", time.UTC, discardLogger(), func() {})
	require.NoError(t, err)

	s.Start()
	s.Stop()
}
