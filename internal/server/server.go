/*
Package server exposes a small HTTP interface for triggering runs and
browsing generated reports.
*/
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/pipeline"
)

// Server serves the dashboard endpoints.
type Server struct {
	pipe      *pipeline.Pipeline
	outputDir string
	log       *slog.Logger
	http      *http.Server
}

// New builds the HTTP server around the given pipeline and report directory.
func New(addr string, pipe *pipeline.Pipeline, outputDir string, log *slog.Logger) *Server {
	s := &Server{pipe: pipe, outputDir: outputDir, log: log}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/run", s.handleRun)
	r.Get("/reports", s.handleListReports)
	r.Get("/reports/{name}", s.handleGetReport)
	r.Get("/rss.xml", s.handleRSS)

	s.http = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("http server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRun triggers a pipeline run in the background. A second request
// while a run is active gets a 409.
func (s *Server) handleRun(w http.ResponseWriter, _ *http.Request) {
	done := make(chan error, 1)
	go func() {
		_, err := s.pipe.Run(context.Background())
		done <- err
	}()

	select {
	case err := <-done:
		if errors.Is(err, pipeline.ErrRunInProgress) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
	case <-time.After(200 * time.Millisecond):
		// Still running; report acceptance and let it finish in background.
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
	}
}

type reportInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

func (s *Server) handleListReports(w http.ResponseWriter, _ *http.Request) {
	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "cannot read report directory"})
		return
	}

	reports := make([]reportInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		reports = append(reports, reportInfo{Name: e.Name(), Size: info.Size(), Modified: info.ModTime()})
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Modified.After(reports[j].Modified) })

	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		http.Error(w, "invalid report name", http.StatusBadRequest)
		return
	}

	path := filepath.Join(s.outputDir, name)
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
