package am

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/itemquery/errors"
	"github.com/teranos/itemquery/logger"
)

// ConfigWatcher watches config files, and any extra files such as the
// catalog, for changes and triggers reload callbacks
type ConfigWatcher struct {
	paths           map[string]bool
	watcher         *fsnotify.Watcher
	callbacks       []ReloadCallback
	mu              sync.RWMutex
	debounceTimer   *time.Timer
	debouncePeriod  time.Duration
	ownWriteAt      time.Time // Events shortly after our own write are ignored
	isOwnWriteMutex sync.Mutex
	done            chan struct{}
}

// ReloadCallback is called when config is reloaded
// Receives the new config and returns any error
type ReloadCallback func(*Config) error

// globalWatcher holds the singleton config watcher instance
var (
	globalWatcher   *ConfigWatcher
	globalWatcherMu sync.Mutex
)

// DefaultDebouncePeriod collapses the burst of events editors emit on save
const DefaultDebouncePeriod = 500 * time.Millisecond

// ownWriteWindow covers the truncate and write events of a single save
const ownWriteWindow = time.Second

// NewConfigWatcher creates a watcher for the given files.
//
// Parent directories are watched rather than the files themselves, so
// editors that save by renaming a temp file over the original keep
// triggering reloads.
func NewConfigWatcher(paths ...string) (*ConfigWatcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("config watcher needs at least one file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	cw := &ConfigWatcher{
		paths:          make(map[string]bool),
		watcher:        watcher,
		debouncePeriod: DefaultDebouncePeriod,
		done:           make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "resolve %s", path)
		}
		cw.paths[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to watch directory of %s", path)
		}
		dirs[dir] = true
	}

	return cw, nil
}

// SetDebouncePeriod changes how long the watcher waits for changes to settle
func (cw *ConfigWatcher) SetDebouncePeriod(d time.Duration) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.debouncePeriod = d
}

// OnReload registers a callback to be called when config is reloaded
func (cw *ConfigWatcher) OnReload(callback ReloadCallback) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.callbacks = append(cw.callbacks, callback)
}

// MarkOwnWrite marks the next write as coming from us (prevents reload loops)
func (cw *ConfigWatcher) MarkOwnWrite() {
	cw.isOwnWriteMutex.Lock()
	defer cw.isOwnWriteMutex.Unlock()
	cw.ownWriteAt = time.Now()
}

// checkOwnWrite reports whether an event falls into the own-write window
func (cw *ConfigWatcher) checkOwnWrite() bool {
	cw.isOwnWriteMutex.Lock()
	defer cw.isOwnWriteMutex.Unlock()

	return !cw.ownWriteAt.IsZero() && time.Since(cw.ownWriteAt) < ownWriteWindow
}

// Start begins watching for file changes
func (cw *ConfigWatcher) Start() {
	go cw.watchLoop()
}

// watchLoop monitors file system events
func (cw *ConfigWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}

			if !cw.paths[filepath.Clean(event.Name)] {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if cw.checkOwnWrite() {
				logger.Debugw("Config watcher ignoring own write",
					logger.FieldFile, event.Name)
				continue
			}

			logger.Infow("Config watcher detected change",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			cw.scheduleReload()

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Config watcher error",
				logger.FieldError, err)

		case <-cw.done:
			return
		}
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (cw *ConfigWatcher) scheduleReload() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}

	cw.debounceTimer = time.AfterFunc(cw.debouncePeriod, func() {
		if err := cw.reload(); err != nil {
			logger.Errorw("Config reload failed",
				logger.FieldError, err)
		}
	})
}

// reload reloads the configuration and calls all callbacks
func (cw *ConfigWatcher) reload() error {
	Reset()

	newConfig, err := Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger.Infow("Config reloaded successfully",
		logger.FieldCount, len(cw.paths))

	cw.mu.RLock()
	callbacks := make([]ReloadCallback, len(cw.callbacks))
	copy(callbacks, cw.callbacks)
	cw.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(newConfig); err != nil {
			// Continue calling other callbacks even if one fails
			logger.Warnw("Config reload callback error",
				logger.FieldError, err)
		}
	}

	return nil
}

// Stop stops watching for changes
func (cw *ConfigWatcher) Stop() error {
	cw.mu.Lock()
	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}
	cw.mu.Unlock()

	select {
	case <-cw.done:
	default:
		close(cw.done)
	}
	return cw.watcher.Close()
}

// SetGlobalWatcher sets the global watcher instance (used to prevent reload loops)
func SetGlobalWatcher(watcher *ConfigWatcher) {
	globalWatcherMu.Lock()
	defer globalWatcherMu.Unlock()
	globalWatcher = watcher
}
