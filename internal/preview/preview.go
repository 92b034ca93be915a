// Package preview resolves best-effort preview images for external links by
// reading Open Graph metadata. Failures of any kind resolve to an empty
// image URL; they are logged at debug and never propagated.
package preview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Resolver fetches pages and extracts their og:image (falling back to
// twitter:image). Results, including misses, are cached for the session so
// the same link is never fetched twice.
type Resolver struct {
	client    *http.Client
	userAgent string
	maxBytes  int64

	// fallbacks maps a host substring to a fixed image URL, checked before
	// any network fetch.
	fallbacks map[string]string

	mu    sync.Mutex
	cache map[string]string
}

// Config configures a Resolver.
type Config struct {
	Timeout   time.Duration     // default 10s
	MaxBytes  int64             // default 1MB; OG tags live in <head>
	UserAgent string            // default folio/1.0
	Fallbacks map[string]string // host substring -> image URL
}

// NewResolver creates a Resolver.
func NewResolver(cfg Config) *Resolver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 1 << 20
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "folio/1.0"
	}
	return &Resolver{
		client: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("too many redirects (%d)", len(via))
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBytes,
		fallbacks: cfg.Fallbacks,
		cache:     make(map[string]string),
	}
}

// Resolve returns a preview image URL for target, or "" when none could be
// found. Never returns an error: a miss is a valid, cached outcome.
func (r *Resolver) Resolve(ctx context.Context, target string, logger *slog.Logger) string {
	parsed, err := url.Parse(target)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ""
	}

	r.mu.Lock()
	if img, ok := r.cache[target]; ok {
		r.mu.Unlock()
		return img
	}
	r.mu.Unlock()

	img := r.lookup(ctx, parsed, target, logger)

	r.mu.Lock()
	r.cache[target] = img
	r.mu.Unlock()
	return img
}

func (r *Resolver) lookup(ctx context.Context, parsed *url.URL, target string, logger *slog.Logger) string {
	for host, img := range r.fallbacks {
		if strings.Contains(parsed.Host, host) {
			return img
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		logger.Debug("preview: fetch failed", slog.String("url", target), slog.String("error", err.Error()))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Debug("preview: non-200", slog.String("url", target), slog.Int("status", resp.StatusCode))
		return ""
	}

	img, err := ExtractImage(io.LimitReader(resp.Body, r.maxBytes))
	if err != nil {
		logger.Debug("preview: parse failed", slog.String("url", target), slog.String("error", err.Error()))
		return ""
	}
	return img
}

// ExtractImage parses an HTML document and returns the og:image content,
// falling back to twitter:image. Returns "" when neither is present.
func ExtractImage(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var ogImage, twitterImage string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Meta {
			var prop, name, content string
			for _, a := range n.Attr {
				switch a.Key {
				case "property":
					prop = a.Val
				case "name":
					name = a.Val
				case "content":
					content = a.Val
				}
			}
			if content != "" {
				if prop == "og:image" && ogImage == "" {
					ogImage = content
				}
				if (name == "twitter:image" || prop == "twitter:image") && twitterImage == "" {
					twitterImage = content
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if ogImage != "" {
		return ogImage, nil
	}
	return twitterImage, nil
}
