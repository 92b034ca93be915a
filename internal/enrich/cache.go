package enrich

import (
	"context"
	"log/slog"
	"sync"

	"github.com/davewd/folio/internal/records"
)

// Cache holds the feed-sourced thought for the lifetime of the process.
// It starts empty, is populated at most once, and is never cleared. The
// explicit accessor keeps the session state substitutable in tests.
type Cache struct {
	mu      sync.RWMutex
	thought records.Thought
	set     bool
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Put stores the enriched thought. The first call wins; later calls are
// ignored so a slow duplicate fetch can never replace what clients have
// already seen. Thoughts with no sections are ignored outright.
func (c *Cache) Put(t records.Thought) bool {
	if len(t.Sections) == 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set {
		return false
	}
	c.thought = t
	c.set = true
	return true
}

// Get returns the enriched thought, if one has arrived.
func (c *Cache) Get() (records.Thought, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.thought, c.set
}

// Run performs the one-shot enrichment: fetch the handle's feed, parse,
// convert, and store. Every failure path logs and returns false; nothing is
// retried and nothing blocks on this. Returns true when the cache was
// populated.
func Run(ctx context.Context, fetcher *Fetcher, cache *Cache, handle, title string, logger *slog.Logger) bool {
	if handle == "" {
		return false
	}

	body, err := fetcher.FetchFeed(ctx, FeedURL(handle), logger)
	if err != nil {
		logger.Warn("enrich: feed unavailable", slog.String("handle", handle), slog.String("error", err.Error()))
		return false
	}

	posts, err := ParseFeed(body)
	if err != nil {
		logger.Warn("enrich: feed unparseable", slog.String("handle", handle), slog.String("error", err.Error()))
		return false
	}
	if len(posts) == 0 {
		logger.Info("enrich: feed empty", slog.String("handle", handle))
		return false
	}

	if !cache.Put(PostsToThought(posts, title)) {
		return false
	}
	logger.Info("enrich: thought added", slog.String("handle", handle), slog.Int("posts", len(posts)))
	return true
}
