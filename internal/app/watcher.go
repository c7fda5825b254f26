package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/noisefetch/pkg/log"
)

// DefaultDebounce is how long the watcher waits after the last change to
// the config file before running again.
const DefaultDebounce = 100 * time.Millisecond

// ConfigWatcher re-runs a job whenever a config file changes.
type ConfigWatcher struct {
	path     string
	run      func(ctx context.Context) error
	logger   log.Logger
	debounce time.Duration
}

// NewConfigWatcher watches path. run is called once at start and again after
// every debounced Write or Create of path. A non-positive debounce uses
// DefaultDebounce.
func NewConfigWatcher(path string, run func(ctx context.Context) error, logger log.Logger, debounce time.Duration) *ConfigWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ConfigWatcher{
		path:     filepath.Clean(path),
		run:      run,
		logger:   logger,
		debounce: debounce,
	}
}

// Run blocks until ctx is canceled. Job failures are logged and do not stop
// the watcher. Runs never overlap: they execute on the watching goroutine.
func (w *ConfigWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching config", log.String("path", w.path))

	w.runOnce(ctx)

	var (
		timer  *time.Timer
		timerC <-chan time.Time
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

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.logger.Info("config changed, running again", log.String("path", w.path))
			w.runOnce(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("config watcher error", log.Err(err))
		}
	}
}

func (w *ConfigWatcher) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := w.run(ctx); err != nil {
		w.logger.Error("run failed", log.Err(err))
	}
}
