package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/almanac/internal/model"
)

// FileWatcher reports changes to a single file.
type FileWatcher interface {
	// Watch emits one value per settled change to path until ctx is done,
	// then closes the channel.
	Watch(ctx context.Context, path m.Path) (<-chan struct{}, error)
}

type fsnotifyWatcher struct {
	debounce time.Duration
}

// NewFileWatcher returns an fsnotify-backed FileWatcher. Bursts of events
// closer together than debounce are reported once.
func NewFileWatcher(debounce time.Duration) FileWatcher {
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	return &fsnotifyWatcher{debounce: debounce}
}

func (w *fsnotifyWatcher) Watch(ctx context.Context, path m.Path) (<-chan struct{}, error) {
	target, err := filepath.Abs(string(path))
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors often replace files on save, so watch the directory.
	if err := fw.Add(filepath.Dir(target)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	changes := make(chan struct{}, 1)

	go w.loop(ctx, fw, target, changes)

	return changes, nil
}

func (w *fsnotifyWatcher) loop(ctx context.Context, fw *fsnotify.Watcher, target string, changes chan<- struct{}) {
	defer close(changes)
	defer func() { _ = fw.Close() }()

	var pending time.Time

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < w.debounce {
				continue
			}

			pending = time.Time{}

			select {
			case changes <- struct{}{}:
			default:
				// a change is already queued
			}

		case _, ok := <-fw.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}
