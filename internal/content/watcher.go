package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nfrund/formdocs/internal/pubsub"
)

// Reloaded is published after a successful reload of the mapping file.
type Reloaded struct {
	Version string    `json:"version"`
	Path    string    `json:"path"`
	At      time.Time `json:"at"`
}

// ReloadedEvent is the topic carrying Reloaded payloads.
var ReloadedEvent = pubsub.NewEvent[Reloaded]("content.reloaded")

const defaultDebounce = 150 * time.Millisecond

// Watcher reloads a mapping file from disk whenever it changes. A file that
// fails to load or validate leaves the current store in place.
type Watcher struct {
	loader    *Loader
	holder    *Holder
	publisher pubsub.Publisher
	debounce  time.Duration
}

// NewWatcher creates a watcher; publisher may be nil.
func NewWatcher(loader *Loader, holder *Holder, publisher pubsub.Publisher) *Watcher {
	return &Watcher{
		loader:    loader,
		holder:    holder,
		publisher: publisher,
		debounce:  defaultDebounce,
	}
}

// Reload loads the mapping once and swaps it in on success.
func (w *Watcher) Reload(ctx context.Context) error {
	store, err := w.loader.Load(ctx)
	if err != nil {
		return err
	}
	previous := w.holder.Swap(store)

	prevVersion := ""
	if previous != nil {
		prevVersion = previous.Version()
	}
	slog.Info("Content reloaded", "path", w.loader.Path(), "version", store.Version(), "previous_version", prevVersion)

	if w.publisher == nil {
		return nil
	}
	return pubsub.Publish(ctx, w.publisher, ReloadedEvent, Reloaded{
		Version: store.Version(),
		Path:    w.loader.Path(),
		At:      time.Now().UTC(),
	})
}

// Run watches the mapping file until ctx is canceled. The parent directory is
// watched rather than the file so that editors replacing the file on save are
// still noticed.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer fsw.Close()

	target := filepath.Clean(w.loader.Path())
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	slog.Debug("Started file system watcher for content hot-reloading", "path", target)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			slog.Debug("File system event", "event", event.Op.String(), "path", event.Name)
			// Editors often emit several events per save; collapse them.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if err := w.Reload(ctx); err != nil {
				slog.Error("Content reload failed, keeping previous content", "path", target, "error", err)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("File system watcher error", "error", err)
		}
	}
}
