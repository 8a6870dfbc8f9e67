package collect

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/processing"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/sources"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/week"
)

// feedStrategy handles RSS and Atom feeds. It also serves generic XML
// sources, since most advisory XML endpoints are feed-compatible.
type feedStrategy struct {
	parser *gofeed.Parser
	loc    *time.Location
}

func newFeedStrategy(loc *time.Location) *feedStrategy {
	p := gofeed.NewParser()
	p.UserAgent = userAgent
	return &feedStrategy{parser: p, loc: loc}
}

func (c *Collector) fetchFeed(ctx context.Context, src sources.Descriptor) ([]types.NewsItem, error) {
	feed, err := c.feed.parser.ParseURLWithContext(src.FetchURL(), ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	var items []types.NewsItem
	for _, entry := range feed.Items {
		var pub time.Time
		if entry.PublishedParsed != nil {
			pub = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			pub = *entry.UpdatedParsed
		}
		if !week.IsCurrentWeek(pub, c.loc) {
			continue
		}

		if entry.Link == "" {
			continue
		}

		title := entry.Title
		if title == "" {
			title = "Unknown Title"
		}
		summary := entry.Description
		if summary == "" {
			summary = entry.Content
		}

		items = append(items, types.NewsItem{
			SourceName:    src.Name,
			Title:         title,
			Summary:       processing.CapSummary(summary),
			URL:           entry.Link,
			PublishedDate: pub,
			Severity:      processing.InferSeverity(title + " " + summary),
			CVEIDs:        processing.ExtractCVEs(title + " " + summary),
			Category:      "Advisory",
			Language:      src.Language,
			Region:        src.Region,
		})
	}
	return items, nil
}
