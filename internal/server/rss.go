package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gorilla/feeds"
)

const reportPrefix = "report_cyber_"

// handleRSS serves the archive of generated weekly reports as an RSS feed,
// newest first.
func (s *Server) handleRSS(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		http.Error(w, "cannot read report directory", http.StatusInternalServerError)
		return
	}

	feed := &feeds.Feed{
		Title:       "Cyber Intel Weekly",
		Link:        &feeds.Link{Href: baseURL(r) + "/reports"},
		Description: "Weekly cybersecurity advisory digests",
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, reportPrefix) {
			continue
		}
		ext := filepath.Ext(name)
		if ext != ".html" && ext != ".json" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		weekLabel := strings.TrimSuffix(strings.TrimPrefix(name, reportPrefix), ext)
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       fmt.Sprintf("Cyber Intel Weekly %s", weekLabel),
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/reports/%s", baseURL(r), name)},
			Description: fmt.Sprintf("Weekly cybersecurity digest for %s", weekLabel),
			Id:          name,
			Created:     info.ModTime(),
		})
	}
	sort.Slice(feed.Items, func(i, j int) bool { return feed.Items[i].Created.After(feed.Items[j].Created) })
	if len(feed.Items) > 0 {
		feed.Created = feed.Items[0].Created
	}

	rss, err := feed.ToRss()
	if err != nil {
		http.Error(w, "failed to build feed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write([]byte(rss))
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
