package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/logging"
)

// Watcher reloads the config file on change and hands the result to a
// callback. Used by serve mode so profile text and quality indicators can
// be edited without a restart.
type Watcher struct {
	loader   *Loader
	logger   *logging.Logger
	onChange func(*Config)

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher creates a watcher around an already-loaded configuration.
func NewWatcher(loader *Loader, logger *logging.Logger, onChange func(*Config)) *Watcher {
	return &Watcher{
		loader:   loader,
		logger:   logger,
		onChange: onChange,
	}
}

// Start begins watching the loaded config file. It is a no-op when the
// configuration came from defaults only.
func (w *Watcher) Start() error {
	file := w.loader.ConfigFile()
	if file == "" {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Watch the directory, not the file: editors replace files on save
	// and a file watch would be lost after the first write.
	if err := fw.Add(filepath.Dir(file)); err != nil {
		fw.Close()
		return err
	}

	done := make(chan struct{})
	w.mu.Lock()
	w.watcher = fw
	w.done = done
	w.mu.Unlock()

	// loop works on its own references; Stop mutates the fields under the
	// mutex, so the goroutine must never read them.
	go w.loop(fw, done, file)
	return nil
}

// Stop ends watching.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		close(w.done)
		w.watcher.Close()
		w.watcher = nil
	}
}

func (w *Watcher) loop(fw *fsnotify.Watcher, done chan struct{}, file string) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(file) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := w.loader.Load()
			if err != nil {
				w.logger.Warn("config reload failed, keeping previous", "file", file, "error", err)
				continue
			}
			w.logger.Info("config reloaded", "file", file)
			w.onChange(cfg)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}
