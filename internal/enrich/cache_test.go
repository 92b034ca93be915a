package enrich

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davewd/folio/internal/records"
)

func TestCacheSetOnce(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get(); ok {
		t.Fatal("new cache should be empty")
	}

	first := records.Thought{ID: "m", Sections: []records.Section{{ID: "s1"}}}
	if !c.Put(first) {
		t.Fatal("first put should succeed")
	}

	second := records.Thought{ID: "m2", Sections: []records.Section{{ID: "s2"}}}
	if c.Put(second) {
		t.Error("second put should be ignored")
	}

	got, ok := c.Get()
	if !ok || got.ID != "m" {
		t.Errorf("got %q ok=%v, want first thought", got.ID, ok)
	}
}

func TestCacheRejectsEmptyThought(t *testing.T) {
	c := NewCache()
	if c.Put(records.Thought{ID: "empty"}) {
		t.Error("thought without sections should be rejected")
	}
	if _, ok := c.Get(); ok {
		t.Error("cache should remain empty")
	}
}

func TestRunPopulatesCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	fetcher := NewFetcher(FetcherConfig{})
	cache := NewCache()
	logger := slog.New(slog.DiscardHandler)

	body, err := fetcher.FetchFeed(context.Background(), srv.URL, logger)
	if err != nil {
		t.Fatalf("FetchFeed: %v", err)
	}
	posts, err := ParseFeed(body)
	if err != nil {
		t.Fatalf("ParseFeed: %v", err)
	}
	if !cache.Put(PostsToThought(posts, "Feed")) {
		t.Fatal("cache should accept the converted thought")
	}

	got, ok := cache.Get()
	if !ok || len(got.Sections) != 2 {
		t.Errorf("cached thought = %+v ok=%v", got, ok)
	}
}

func TestRunDegradesOnUnreachableFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	fetcher := NewFetcher(FetcherConfig{})
	cache := NewCache()
	logger := slog.New(slog.DiscardHandler)

	if _, err := fetcher.FetchFeed(context.Background(), srv.URL, logger); err == nil {
		t.Fatal("expected fetch failure")
	}
	if _, ok := cache.Get(); ok {
		t.Error("cache must stay empty after failure")
	}
}

func TestRunDisabledWithoutHandle(t *testing.T) {
	if Run(context.Background(), NewFetcher(FetcherConfig{}), NewCache(), "", "t", slog.New(slog.DiscardHandler)) {
		t.Error("empty handle must disable enrichment")
	}
}
