/*
Package pipeline orchestrates a full weekly run: collect from every source,
deduplicate, synthesize, render the reports and notify.
*/
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/collect"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/notify"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/processing"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/report"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/sources"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/synth"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/week"
)

// ErrRunInProgress is returned when a run is requested while another is
// still executing.
var ErrRunInProgress = errors.New("a pipeline run is already in progress")

// Result summarizes a completed run.
type Result struct {
	RunID          string
	WeekLabel      string
	ItemsCollected int
	ItemsUnique    int
	ReportPath     string
	CondensedPath  string
	Duration       time.Duration
}

// Pipeline wires the collection, synthesis, rendering and notification
// stages together. At most one run executes at a time.
type Pipeline struct {
	collector *collect.Collector
	engine    *synth.Engine
	renderer  *report.Renderer
	mailer    *notify.EmailSender
	srcs      []sources.Descriptor
	loc       *time.Location
	log       *slog.Logger

	mu sync.Mutex
}

// New assembles a pipeline over the given source registry. mailer may be nil
// when email is not configured.
func New(collector *collect.Collector, engine *synth.Engine, renderer *report.Renderer, mailer *notify.EmailSender, srcs []sources.Descriptor, loc *time.Location, log *slog.Logger) *Pipeline {
	return &Pipeline{
		collector: collector,
		engine:    engine,
		renderer:  renderer,
		mailer:    mailer,
		srcs:      srcs,
		loc:       loc,
		log:       log,
	}
}

// Run executes a full weekly cycle. It returns ErrRunInProgress if another
// run holds the lock.
func (p *Pipeline) Run(ctx context.Context) (res Result, err error) {
	if !p.mu.TryLock() {
		return Result{}, ErrRunInProgress
	}
	defer p.mu.Unlock()

	start := time.Now()
	runID := uuid.NewString()
	log := p.log.With("run_id", runID)

	defer func() {
		if r := recover(); r != nil {
			log.Error("pipeline run panicked", "panic", r)
			err = errors.New("pipeline run panicked")
		}
	}()

	log.Info("weekly run started", "week", week.Label(p.loc))

	collected := p.collector.Collect(ctx, p.srcs)
	unique := processing.Deduplicate(collected)
	log.Info("collection complete", "collected", len(collected), "unique", len(unique))

	digest := p.engine.Synthesize(ctx, unique)

	weekLabel := week.Label(p.loc)
	generatedAt := time.Now().In(p.loc).Format("2006-01-02 15:04 MST")

	reportPath, err := p.renderer.GenerateReport(digest, weekLabel, generatedAt)
	if err != nil {
		log.Error("report generation failed", "err", err)
		return Result{}, err
	}

	condensedPath, err := p.renderer.GenerateCondensed(digest, weekLabel)
	if err != nil {
		log.Error("condensed report generation failed", "err", err)
	}

	if p.mailer != nil {
		if err := p.mailer.SendReport(digest, reportPath); err != nil {
			log.Error("email delivery failed", "err", err)
		}
	}

	res = Result{
		RunID:          runID,
		WeekLabel:      weekLabel,
		ItemsCollected: len(collected),
		ItemsUnique:    len(unique),
		ReportPath:     reportPath,
		CondensedPath:  condensedPath,
		Duration:       time.Since(start),
	}
	log.Info("weekly run finished", "duration", res.Duration.Round(time.Millisecond).String(), "report", reportPath)
	return res, nil
}
