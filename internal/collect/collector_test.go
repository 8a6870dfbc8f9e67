package collect

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/sources"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
)

func testCollector() *Collector {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), time.UTC)
}

func rssFixture(currentDate, oldDate string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Advisories</title>
  <item>
    <title>Critical fix for CVE-2025-12345</title>
    <link>https://example.com/advisories/1</link>
    <description>&lt;p&gt;A critical flaw was patched.&lt;/p&gt;</description>
    <pubDate>%s</pubDate>
  </item>
  <item>
    <title>Old advisory from last month</title>
    <link>https://example.com/advisories/0</link>
    <description>Stale entry.</description>
    <pubDate>%s</pubDate>
  </item>
  <item>
    <title>Linkless advisory this week</title>
    <description>No link.</description>
    <pubDate>%s</pubDate>
  </item>
</channel>
</rss>`, currentDate, oldDate, currentDate)
}

func TestCollectFeedSource(t *testing.T) {
	now := time.Now().UTC().Format(time.RFC1123Z)
	old := time.Now().UTC().AddDate(0, -1, 0).Format(time.RFC1123Z)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssFixture(now, old))
	}))
	defer srv.Close()

	src := sources.Descriptor{
		Name:     "Test Advisories",
		URL:      srv.URL,
		Kind:     sources.KindFeed,
		Language: "en",
		Region:   types.RegionGlobal,
	}

	items := testCollector().Collect(context.Background(), []sources.Descriptor{src})

	require.Len(t, items, 1)
	item := items[0]
	require.Equal(t, "Test Advisories", item.SourceName)
	require.Equal(t, "Critical fix for CVE-2025-12345", item.Title)
	require.Equal(t, "https://example.com/advisories/1", item.URL)
	require.Equal(t, "A critical flaw was patched.", item.Summary)
	require.Equal(t, types.SeverityCritical, item.Severity)
	require.Equal(t, []string{"CVE-2025-12345"}, item.CVEIDs)
	require.Equal(t, "Advisory", item.Category)
	require.Equal(t, types.RegionGlobal, item.Region)
}

func TestCollectXMLSourceUsesFeedStrategy(t *testing.T) {
	now := time.Now().UTC().Format(time.RFC1123Z)
	old := time.Now().UTC().AddDate(0, -1, 0).Format(time.RFC1123Z)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprint(w, rssFixture(now, old))
	}))
	defer srv.Close()

	src := sources.Descriptor{Name: "XML Source", URL: srv.URL, Kind: sources.KindXML}
	items := testCollector().Collect(context.Background(), []sources.Descriptor{src})
	require.Len(t, items, 1)
}

func TestCollectContinuesPastFailingSource(t *testing.T) {
	now := time.Now().UTC().Format(time.RFC1123Z)
	old := time.Now().UTC().AddDate(0, -1, 0).Format(time.RFC1123Z)

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer bad.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, rssFixture(now, old))
	}))
	defer good.Close()

	srcs := []sources.Descriptor{
		{Name: "Broken", URL: bad.URL, Kind: sources.KindFeed},
		{Name: "Working", URL: good.URL, Kind: sources.KindFeed},
	}

	items := testCollector().Collect(context.Background(), srcs)
	require.Len(t, items, 1)
	require.Equal(t, "Working", items[0].SourceName)
}

func TestCollectUnknownKindYieldsNothing(t *testing.T) {
	src := sources.Descriptor{Name: "Mystery", URL: "https://example.com", Kind: sources.Kind("carrier_pigeon")}
	items := testCollector().Collect(context.Background(), []sources.Descriptor{src})
	require.Empty(t, items)
}

func TestFeedURLPreferredOverPageURL(t *testing.T) {
	src := sources.Descriptor{
		Name:    "With Feed",
		URL:     "https://example.com/page",
		FeedURL: "https://example.com/feed.rss",
	}
	require.Equal(t, "https://example.com/feed.rss", src.FetchURL())

	src.FeedURL = ""
	require.Equal(t, "https://example.com/page", src.FetchURL())
}
