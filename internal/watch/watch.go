// Package watch reloads tree view settings when their file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/treeview"
)

// DefaultDebounce is how long the file has to stay quiet before it is
// reloaded.
const DefaultDebounce = 200 * time.Millisecond

// SettingsWatcher delivers freshly loaded settings whenever the watched
// file is written. Only the newest value is kept if the reader lags.
type SettingsWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	updates  chan treeview.Settings
	debounce time.Duration
	log      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// Settings starts watching path. The directory is watched rather than the
// file so editors that replace the file on save are picked up.
func Settings(path string, debounce time.Duration, log *slog.Logger) (*SettingsWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &SettingsWatcher{
		path:     abs,
		watcher:  watcher,
		updates:  make(chan treeview.Settings, 1),
		debounce: debounce,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go w.watchLoop()
	return w, nil
}

// Updates returns the channel of reloaded settings.
func (w *SettingsWatcher) Updates() <-chan treeview.Settings { return w.updates }

// Poll returns the newest reloaded settings without blocking.
func (w *SettingsWatcher) Poll() (treeview.Settings, bool) {
	select {
	case s := <-w.updates:
		return s, true
	default:
		return treeview.Settings{}, false
	}
}

// Close stops watching and waits for the loop to exit.
func (w *SettingsWatcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *SettingsWatcher) watchLoop() {
	defer close(w.done)
	var reload <-chan time.Time
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			reload = time.After(w.debounce)

		case <-reload:
			reload = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("settings watcher error", "err", err)
		}
	}
}

func (w *SettingsWatcher) reload() {
	s, err := treeview.LoadSettings(w.path)
	if err != nil {
		w.log.Warn("settings reload failed", "path", w.path, "err", err)
		return
	}
	w.log.Info("settings reloaded", "path", w.path, "vline_style", s.VLineStyle, "row_layout", s.RowLayout)
	// Replace an unread value so the reader always sees the newest file.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- s
}
