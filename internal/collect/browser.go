package collect

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/sources"
	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
)

const (
	pageLoadTimeout = 30 * time.Second
	// Extra wait after load for JS frameworks to render their content.
	pageSettleDelay = 3 * time.Second
)

// fetchBrowser renders a JavaScript-heavy page in a headless browser scoped
// to this single fetch, then applies the generic heuristic to the rendered
// markup. The browser is torn down even when the page fails.
func (c *Collector) fetchBrowser(ctx context.Context, src sources.Descriptor) ([]types.NewsItem, error) {
	c.log.Info("using headless browser", "source", src.Name)

	bin, _ := launcher.LookPath()
	controlURL, err := launcher.New().Bin(bin).Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: src.FetchURL()})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	if err := page.Timeout(pageLoadTimeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("page load failed: %w", err)
	}
	time.Sleep(pageSettleDelay)

	rendered, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered page: %w", err)
	}
	base, err := url.Parse(src.FetchURL())
	if err != nil {
		return nil, err
	}
	return c.genericItems(doc, base, src), nil
}
