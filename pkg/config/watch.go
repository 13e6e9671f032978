package config

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// defaultDebounceInterval is the quiet period required after a file event
// before a reload fires. Editors often produce several events per save.
const defaultDebounceInterval = 100 * time.Millisecond

// Watcher watches a pattern file for changes and delivers freshly parsed
// tables to a reload callback. A change that fails to read or parse is
// logged and dropped, leaving the previous table in effect.
type Watcher struct {
	path     string
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
	onReload func(table map[string][]string)

	debounce *debouncer

	mu     sync.Mutex
	closed bool
	doneCh chan struct{}
}

// NewWatcher starts watching the pattern file at path. The callback runs
// on the watcher's goroutine after each successful re-parse; it must not
// block for long.
func NewWatcher(path string, logger *slog.Logger, onReload func(table map[string][]string)) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch pattern file %q: %w", path, err)
	}

	w := &Watcher{
		path:     path,
		logger:   logger,
		watcher:  fsw,
		onReload: onReload,
		debounce: newDebouncer(defaultDebounceInterval),
		doneCh:   make(chan struct{}),
	}
	go w.run()

	w.logger.Info("Pattern file watcher started", "path", path)
	return w, nil
}

// run is the event processing loop.
func (w *Watcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			w.logger.Debug("Pattern file event", "path", event.Name, "op", event.Op.String())

			w.debounce.trigger(w.reload)

			// Some editors replace the file on save, which removes the
			// watch; re-add so subsequent saves are still seen.
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				if err := w.watcher.Add(w.path); err != nil {
					w.logger.Error("Failed to re-watch pattern file", "path", w.path, "error", err)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Pattern file watcher error", "error", err)
		}
	}
}

// reload re-reads and parses the pattern file, handing the result to the
// callback on success.
func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Error("Pattern reload failed", "path", w.path, "error", err)
		return
	}

	var table map[string][]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		w.logger.Error("Pattern reload failed", "path", w.path, "error", err)
		return
	}

	w.logger.Info("Pattern file reloaded", "path", w.path, "categories", len(table))
	w.onReload(table)
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	w.debounce.stop()
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	<-w.doneCh
	return nil
}

// debouncer collects rapid events and fires the callback only after a
// quiet period.
type debouncer struct {
	interval time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	stopped  bool
	callback func()
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

// trigger arms (or re-arms) the debounce timer with a new callback.
func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.callback = callback

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		cb := d.callback
		stopped := d.stopped
		d.mu.Unlock()

		if cb != nil && !stopped {
			cb()
		}
	})
}

// stop cancels any pending callback.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
