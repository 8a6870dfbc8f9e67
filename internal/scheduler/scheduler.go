/*
Package scheduler runs the weekly pipeline on a cron schedule in the
configured timezone.
*/
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler triggers a job on a cron schedule.
type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger
}

// New creates a scheduler that fires job according to spec, evaluated in loc.
func New(spec string, loc *time.Location, log *slog.Logger, job func()) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(spec, job); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return &Scheduler{cron: c, log: log}, nil
}

// Start begins the schedule in a background goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	if entries := s.cron.Entries(); len(entries) > 0 {
		s.log.Info("scheduler started", "next_run", entries[0].Next.Format(time.RFC3339))
	}
}

// Stop halts the schedule and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}
