package collect

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/processing"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/sources"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/week"
)

const maxMessageTitleLen = 100

// rewriteChannelURL turns a t.me channel link into its public web rendering
// (t.me/<channel> -> t.me/s/<channel>).
func rewriteChannelURL(raw string) string {
	if strings.Contains(raw, "t.me/") && !strings.Contains(raw, "t.me/s/") {
		return strings.Replace(raw, "t.me/", "t.me/s/", 1)
	}
	return raw
}

// messageTitle derives an item title from the first line of a message,
// truncated and cut at the local bullet separator when present.
func messageTitle(text string) string {
	line := text
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	if len([]rune(line)) > maxMessageTitleLen {
		line = processing.Truncate(line, maxMessageTitleLen) + "..."
	}
	if strings.Contains(line, "•") {
		line = strings.TrimSpace(strings.SplitN(line, "•", 2)[0])
	}
	return line
}

// fetchTelegram scrapes the public web rendering of a messaging channel.
// Each message block carries its permalink and a machine-readable timestamp.
func (c *Collector) fetchTelegram(ctx context.Context, src sources.Descriptor) ([]types.NewsItem, error) {
	doc, err := c.getDocument(ctx, rewriteChannelURL(src.FetchURL()))
	if err != nil {
		return nil, err
	}

	var items []types.NewsItem
	doc.Find("div.tgme_widget_message").Each(func(_ int, msg *goquery.Selection) {
		textDiv := msg.Find("div.tgme_widget_message_text").First()
		if textDiv.Length() == 0 {
			return
		}
		text := strings.TrimSpace(textDiv.Text())

		dateLink := msg.Find("a.tgme_widget_message_date").First()
		if dateLink.Length() == 0 {
			return
		}
		msgURL, ok := dateLink.Attr("href")
		if !ok || msgURL == "" {
			return
		}
		stamp, ok := dateLink.Find("time").First().Attr("datetime")
		if !ok {
			return
		}
		pub, perr := time.Parse(time.RFC3339, stamp)
		if perr != nil {
			c.log.Debug("skipping message with unparseable timestamp", "source", src.Name, "datetime", stamp)
			return
		}
		if !week.IsCurrentWeek(pub, c.loc) {
			return
		}

		items = append(items, types.NewsItem{
			SourceName:    src.Name,
			Title:         messageTitle(text),
			Summary:       processing.Truncate(text, processing.MaxSummaryLen),
			URL:           msgURL,
			PublishedDate: pub,
			Severity:      processing.InferSeverity(text),
			CVEIDs:        processing.ExtractCVEs(text),
			Category:      "Threat Intelligence",
			Language:      src.Language,
			Region:        src.Region,
		})
	})
	return items, nil
}
