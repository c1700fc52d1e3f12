package recipes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html"

	"github.com/local-mcps/grocery-mcps/config"
	"github.com/local-mcps/grocery-mcps/internal/common"
)

const maxPageBytes = 10 * 1024 * 1024

// Fetcher retrieves content pages. Unlike the grocery transport it does not
// reclassify failures; the site is public, so there is no auth or throttling
// split to express.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
}

func NewFetcher(cfg *config.RecipesConfig) *Fetcher {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}

	return &Fetcher{
		// The default client follows redirects, which content pages rely on.
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		userAgent: cfg.UserAgent,
	}
}

// FetchDocument GETs the page and parses it into an HTML document tree.
func (f *Fetcher) FetchDocument(ctx context.Context, pageURL string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		// Transport failures pass through with their original message.
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d %s fetching %s", common.ErrNetwork, resp.StatusCode, http.StatusText(resp.StatusCode), pageURL)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return doc, nil
}
