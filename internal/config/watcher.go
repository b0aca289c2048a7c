package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/tinct/internal/logger"
	tincterrors "github.com/alexisbeaulieu97/tinct/pkg/errors"
)

var errWatcherStopped = errors.New("config watcher stopped")

// Watcher reloads the settings file whenever it is written and hands the
// new settings to a callback. Invalid files are logged and skipped.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(*Config)
	log      *logger.Logger
	done     chan struct{}
	mu       sync.Mutex
	running  bool
	closed   bool
}

// NewWatcher creates a watcher for path. onChange runs on the watcher's
// goroutine.
func NewWatcher(path string, log *logger.Logger, onChange func(*Config)) (*Watcher, error) {
	if path == "" {
		path = Path()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:  watcher,
		path:     path,
		onChange: onChange,
		log:      log.WithField("config", path),
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. Calling it again while running does nothing.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if w.closed {
		return errWatcherStopped
	}

	// Watch the directory; editors replace files rather than writing in place.
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.running = true
	go w.watch()
	return nil
}

func (w *Watcher) watch() {
	filename := filepath.Base(w.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error(err, "config watcher error")

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		if tincterrors.IsSettingsError(err) {
			w.log.WithField("path", w.path).Warn("keeping previous settings: " + err.Error())
			return
		}
		w.log.Error(err, "reload config")
		return
	}
	w.log.WithField("mode", cfg.Mode).Debug("config reloaded")
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

// Stop stops the watcher and releases its file descriptor, whether or not it
// was started. Calling it more than once is harmless; a stopped watcher
// cannot be restarted.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.running {
		w.running = false
		close(w.done)
	}
	return w.watcher.Close()
}
