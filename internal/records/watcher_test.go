package records

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "projects.json", `{"projects": [{"id": "p1", "name": "A", "description": "", "status": "Active", "tags": [], "links": []}]}`)

	store := NewStore()
	snap, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	store.Swap(snap)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 8)
	go func() {
		_ = Watch(ctx, store, dir, slog.New(slog.DiscardHandler), func() {
			reloaded <- struct{}{}
		})
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	writeFixture(t, dir, "projects.json", `{"projects": [
		{"id": "p1", "name": "A", "description": "", "status": "Active", "tags": [], "links": []},
		{"id": "p2", "name": "B", "description": "", "status": "Future", "tags": [], "links": []}
	]}`)

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if got := len(store.Snapshot().Projects); got != 2 {
		t.Errorf("projects after reload = %d, want 2", got)
	}
}

func TestWatchKeepsSnapshotOnBrokenReload(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "projects.json", `{"projects": [{"id": "p1", "name": "A", "description": "", "status": "Active", "tags": [], "links": []}]}`)

	store := NewStore()
	snap, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	store.Swap(snap)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = Watch(ctx, store, dir, slog.New(slog.DiscardHandler), nil)
	}()

	time.Sleep(100 * time.Millisecond)
	writeFixture(t, dir, "projects.json", `{"projects": [`)

	// Wait past the debounce window, then confirm the old snapshot survived.
	time.Sleep(600 * time.Millisecond)
	if got := len(store.Snapshot().Projects); got != 1 {
		t.Errorf("projects after broken reload = %d, want 1", got)
	}
}

func TestWatchIgnoresNonJSON(t *testing.T) {
	dir := t.TempDir()
	store := NewStore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 1)
	go func() {
		_ = Watch(ctx, store, dir, slog.New(slog.DiscardHandler), func() {
			reloaded <- struct{}{}
		})
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
		t.Fatal("non-json change triggered a reload")
	case <-time.After(500 * time.Millisecond):
	}
}
