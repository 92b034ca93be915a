package enrich

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// FetcherConfig configures the feed fetcher.
type FetcherConfig struct {
	Timeout   time.Duration // per-attempt HTTP timeout. Default: 15s.
	MaxBytes  int64         // max response body size. Default: 5MB.
	UserAgent string
	// Proxies are tried in order after a direct fetch fails. Each entry is a
	// prefix the feed URL is appended to (URL-escaped).
	Proxies []string
}

func (c *FetcherConfig) defaults() {
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.MaxBytes <= 0 {
		c.MaxBytes = 5 * 1024 * 1024
	}
	if c.UserAgent == "" {
		c.UserAgent = "folio/1.0"
	}
}

// Fetcher retrieves feed documents with a direct-then-proxies fallback chain.
type Fetcher struct {
	client *http.Client
	config FetcherConfig
}

// NewFetcher creates a Fetcher with a redirect cap.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	cfg.defaults()
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("too many redirects (%d)", len(via))
				}
				return nil
			},
		},
		config: cfg,
	}
}

// FetchFeed retrieves feedURL, trying a direct request first and then each
// configured proxy in order. The first attempt that returns a 200 with a
// non-empty body wins. All attempts failing is an error; callers treat it as
// "no enrichment", never as something to surface.
func (f *Fetcher) FetchFeed(ctx context.Context, feedURL string, logger *slog.Logger) ([]byte, error) {
	attempts := make([]string, 0, 1+len(f.config.Proxies))
	attempts = append(attempts, feedURL)
	for _, p := range f.config.Proxies {
		attempts = append(attempts, p+url.QueryEscape(feedURL))
	}

	var lastErr error
	for _, target := range attempts {
		body, err := f.get(ctx, target)
		if err != nil {
			logger.Warn("enrich: fetch attempt failed",
				slog.String("url", target),
				slog.String("error", err.Error()))
			lastErr = err
			continue
		}
		return body, nil
	}
	return nil, fmt.Errorf("enrich: all fetch attempts failed: %w", lastErr)
}

func (f *Fetcher) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	return body, nil
}

// FeedURL builds the Medium RSS URL for a handle.
func FeedURL(handle string) string {
	return "https://medium.com/feed/@" + handle
}
