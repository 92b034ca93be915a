// Package testutil provides shared test helpers for building fixture
// directories and record stores.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davewd/folio/internal/records"
)

// WriteFixture writes one JSON fixture file into dir.
func WriteFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

// FixtureDir creates a temp fixtures directory with a small, representative
// record set and returns its path.
func FixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	WriteFixture(t, dir, "projects.json", `{
		"projects": [
			{"id": "p1", "name": "Alpha", "description": "first project", "status": "Active",
			 "tags": ["go", "api"], "links": [{"href": "https://example.com", "text": "Site"}],
			 "year_start": 2020},
			{"id": "p2", "name": "Beta", "description": "second project", "status": "Complete",
			 "tags": ["python"], "links": [], "year_start": 2022},
			{"id": "p3", "name": "Gamma", "description": "third project", "status": "Active",
			 "tags": ["go"], "links": [], "year_start": 2018}
		]
	}`)

	WriteFixture(t, dir, "thoughts.json", `{
		"thoughts": [
			{"id": "t1", "title": "First", "sections": [
				{"id": "s1", "title": "One", "content": "alpha"},
				{"id": "s2", "title": "Two", "content": "beta"}
			]},
			{"id": "t2", "title": "Second", "sections": [
				{"id": "s3", "title": "Three", "content": "gamma"}
			]},
			{"id": "t3", "title": "Third", "sections": [
				{"id": "s4", "title": "Four", "content": "delta"}
			]}
		]
	}`)

	WriteFixture(t, dir, "timeline.json", `{
		"events": [
			{"date": "2012", "title": "Start", "description": "began", "tags": ["x"]},
			{"date": "2020", "title": "Later", "description": "kept going", "tags": []}
		]
	}`)

	WriteFixture(t, dir, "status_tags.json", `{
		"statuses": {"Active": {"background": "#D1FAE5", "text": "#065F46"}}
	}`)

	return dir
}

// LoadedStore returns a store populated from FixtureDir.
func LoadedStore(t *testing.T) *records.Store {
	t.Helper()
	snap, err := records.Load(FixtureDir(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	store := records.NewStore()
	store.Swap(snap)
	return store
}
