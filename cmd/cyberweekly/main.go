package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/collect"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/config"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/logger"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/notify"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/pipeline"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/report"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/scheduler"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/server"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/sources"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/synth"
)

var runNow = flag.Bool("run-now", false, "Run the weekly pipeline once and exit")

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("cyberweekly", cfg.LogLevel)

	var gen synth.Generator
	if cfg.GeminiAPIKey != "" {
		gen = synth.NewGeminiGenerator(cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		log.Warn("GEMINI_API_KEY not set, reports will be generated in raw digest mode")
	}

	collector := collect.New(log, cfg.Location)
	engine := synth.New(gen, log, cfg.Location)
	renderer := report.NewRenderer(cfg.OutputDir, log)

	var mailer *notify.EmailSender
	if cfg.EmailEnabled() {
		mailer = notify.NewEmailSender(notify.EmailConfig{
			SMTPServer: cfg.SMTPServer,
			SMTPPort:   cfg.SMTPPort,
			SMTPUser:   cfg.SMTPUser,
			SMTPPass:   cfg.SMTPPass,
			FromEmail:  cfg.FromEmail,
			Recipients: cfg.Recipients,
			Enabled:    true,
		}, log)
	} else {
		log.Info("email delivery disabled, reports are written to disk only")
	}

	pipe := pipeline.New(collector, engine, renderer, mailer, sources.All(), cfg.Location, log)

	if *runNow {
		if _, err := pipe.Run(context.Background()); err != nil {
			log.Error("pipeline run failed", "err", err)
			os.Exit(1)
		}
		return
	}

	sched, err := scheduler.New(cfg.CronSpec, cfg.Location, log, func() {
		if _, err := pipe.Run(context.Background()); err != nil {
			log.Error("scheduled pipeline run failed", "err", err)
		}
	})
	if err != nil {
		log.Error("scheduler setup failed", "err", err)
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(cfg.BindAddr, pipe, cfg.OutputDir, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			log.Error("http server failed", "err", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
