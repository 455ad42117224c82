package narrative

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher reloads a catalog's override directory when its files change,
// so narrative edits take effect without a restart.
type Watcher struct {
	catalog  *Catalog
	dir      string
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	pendingMu sync.Mutex
	pending   bool
}

// NewWatcher creates a watcher over dir for catalog. Start must be
// called before any reloads happen.
func NewWatcher(catalog *Catalog, dir string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		catalog:  catalog,
		dir:      dir,
		watcher:  fsw,
		logger:   logger,
		debounce: defaultDebounce,
	}, nil
}

// Start applies the current overrides and begins watching for changes.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.catalog.ApplyOverrides(w.dir); err != nil {
		return err
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Narrative watcher started", "dir", w.dir)
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing: rapid editor
// save sequences collapse into one reload.
func (w *Watcher) processEvents(ctx context.Context) {
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) == ".yaml" {
				w.pendingMu.Lock()
				w.pending = true
				w.pendingMu.Unlock()
				w.logger.Debug("Narrative change detected", "path", event.Name, "op", event.Op.String())
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	dirty := w.pending
	w.pending = false
	w.pendingMu.Unlock()
	if !dirty {
		return
	}

	if err := w.catalog.Reload(); err != nil {
		w.logger.Error("Failed to reload narrative overrides", "dir", w.dir, "error", err)
		return
	}
	w.logger.Info("Reloaded narrative overrides", "dir", w.dir)
}
