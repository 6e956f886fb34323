package bundle

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atolldata/islandatlas/internal/store"
)

// debounceDelay absorbs the burst of write events editors and atomic-save
// tools emit for a single logical change.
const debounceDelay = 200 * time.Millisecond

// Watch re-loads the bundle whenever the file changes and publishes the
// fresh snapshot to st. A load that fails to parse is logged and the
// previously published snapshot stays in place. Blocks until ctx is done.
func Watch(ctx context.Context, path string, st *store.Store, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file itself: atomic saves
	// replace the inode, which would silently detach a file watch.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	target, err := filepath.Abs(path)
	if err != nil {
		target = path
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				name = event.Name
			}
			if name != target {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				snap, err := Load(path)
				if err != nil {
					st.RecordFailure(err)
					logger.Error("bundle reload failed", "path", path, "error", err)
					return
				}
				st.Publish(snap)
				logger.Info("bundle reloaded",
					"snapshot", snap.ID,
					"islands", len(snap.Islands),
					"atolls", len(snap.Atolls))
			})

		case err := <-watcher.Errors:
			logger.Error("bundle watcher error", "error", err)
		}
	}
}
