package records

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadCallback is called after a watcher-driven snapshot swap.
type ReloadCallback func()

// Watch starts an fsnotify watcher on the fixtures directory and reloads the
// store whenever a .json file changes, until ctx is cancelled. Events are
// debounced so an editor save (write + rename + chmod burst) triggers one
// reload. A reload that fails to parse keeps the previous snapshot and logs.
func Watch(ctx context.Context, store *Store, dir string, logger *slog.Logger, cb ReloadCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("dir", dir))

	// reloadTimer debounces bursts of change events.
	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(200 * time.Millisecond)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-reloadCh:
			snap, loadErr := Load(dir)
			if loadErr != nil {
				logger.Warn("watcher: reload failed, keeping previous snapshot",
					slog.String("error", loadErr.Error()))
				continue
			}
			store.Swap(snap)
			logger.Debug("watcher: snapshot reloaded",
				slog.Int("projects", len(snap.Projects)),
				slog.Int("thoughts", len(snap.Thoughts)))
			if cb != nil {
				cb()
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".json") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: error", slog.String("error", werr.Error()))
		}
	}
}
