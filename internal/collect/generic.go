package collect

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"golang.org/x/net/html"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/processing"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/sources"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/week"
)

// The generic heuristic trades completeness for source-layout independence:
// every anchor with enough visible text is a candidate, and a nearby text
// node that looks like a date decides whether it survives the week filter.
// Production use is expected to replace this per source over time.

const minAnchorTextLen = 15

var (
	yearRegex      = regexp.MustCompile(`\b20\d{2}\b`)
	dateCleanRegex = regexp.MustCompile(`[^a-zA-Z0-9\-/:\s]`)
	monthAbbrevs   = []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
)

// fetchStatic fetches a non-scripted page and applies the generic
// link+proximate-date heuristic.
func (c *Collector) fetchStatic(ctx context.Context, src sources.Descriptor) ([]types.NewsItem, error) {
	doc, err := c.getDocument(ctx, src.FetchURL())
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(src.FetchURL())
	if err != nil {
		return nil, err
	}
	c.log.Debug("generic heuristic scrape; source-specific selectors would improve results", "source", src.Name)
	return c.genericItems(doc, base, src), nil
}

// genericItems scans every anchor in doc: visible text of at least
// minAnchorTextLen characters plus a fuzzily parseable, current-week date in
// a nearby text node yields an item.
func (c *Collector) genericItems(doc *goquery.Document, base *url.URL, src sources.Descriptor) []types.NewsItem {
	var items []types.NewsItem

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript") {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if len([]rune(text)) < minAnchorTextLen {
			return
		}

		dateStr := nearbyDateText(sel)
		if dateStr == "" {
			return
		}
		pub, err := dateparse.ParseIn(strings.TrimSpace(dateCleanRegex.ReplaceAllString(dateStr, " ")), c.loc)
		if err != nil {
			c.log.Debug("dropping candidate with unparseable date", "source", src.Name, "date", dateStr)
			return
		}
		if !week.IsCurrentWeek(pub, c.loc) {
			return
		}

		resolved := resolveHref(base, href)
		if resolved == "" {
			return
		}

		items = append(items, types.NewsItem{
			SourceName:    src.Name,
			Title:         text,
			Summary:       "",
			URL:           resolved,
			PublishedDate: pub,
			Severity:      processing.InferSeverity(text),
			CVEIDs:        processing.ExtractCVEs(text),
			Category:      "Advisory",
			Language:      src.Language,
			Region:        src.Region,
		})
	})
	return items
}

// nearbyDateText looks for a date-like text node under the anchor's parent.
func nearbyDateText(sel *goquery.Selection) string {
	parent := sel.Parent()
	if parent.Length() == 0 {
		return ""
	}
	return findDateText(parent.Get(0))
}

func findDateText(n *html.Node) string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			if s := strings.TrimSpace(c.Data); looksLikeDate(s) {
				return s
			}
		}
		if s := findDateText(c); s != "" {
			return s
		}
	}
	return ""
}

// looksLikeDate is a loose filter: a month abbreviation, a 4-digit year, or
// date separator characters in a string long enough to hold a date.
func looksLikeDate(s string) bool {
	if len(s) <= 8 {
		return false
	}
	for _, m := range monthAbbrevs {
		if strings.Contains(s, m) {
			return true
		}
	}
	return yearRegex.MatchString(s) || strings.ContainsAny(s, "-/")
}

func resolveHref(base *url.URL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
