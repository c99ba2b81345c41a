package ontology

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/ontogen/errors"
	"github.com/teranos/ontogen/logger"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 300 * time.Millisecond

// ReloadCallback receives each successfully reloaded ontology.
type ReloadCallback func(*Ontology) error

// Watcher reloads an ontology file when it changes and hands the result to
// the registered callbacks. Rapid successive writes collapse into one reload.
type Watcher struct {
	path           string
	watcher        *fsnotify.Watcher
	callbacks      []ReloadCallback
	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	started        bool
	done           chan struct{}
	stopOnce       sync.Once
}

// NewWatcher watches the ontology at path. The containing directory is
// watched rather than the file so editors that replace the file on save
// are still seen.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", filepath.Dir(abs))
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:           abs,
		watcher:        fw,
		debouncePeriod: debounce,
		done:           make(chan struct{}),
	}, nil
}

// OnReload registers a callback.
func (w *Watcher) OnReload(callback ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true
	go w.watchLoop()
}

func (w *Watcher) watchLoop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debugw("Ontology watcher detected change",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Ontology watcher error",
				logger.FieldError, err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	if isBackupFile(event.Name) {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == w.path
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.reload(); err != nil {
			logger.Errorw("Ontology reload failed",
				logger.FieldOntology, w.path,
				logger.FieldError, err)
		}
	})
}

func (w *Watcher) reload() error {
	o, err := Load(w.path)
	if err != nil {
		return err
	}
	logger.Infow("Ontology reloaded",
		logger.FieldOntology, w.path,
		logger.FieldCount, len(o.Concepts))

	w.mu.Lock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, callback := range callbacks {
		if err := callback(o); err != nil {
			logger.Warnw("Ontology reload callback error",
				logger.FieldError, err)
		}
	}
	return nil
}

// Stop stops watching and waits for the event loop to exit. A reload
// already scheduled is cancelled.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		w.mu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		started := w.started
		w.mu.Unlock()

		err = w.watcher.Close()
		if started {
			<-w.done
		}
	})
	return err
}

// isBackupFile reports editor and config-rotation leftovers.
func isBackupFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasPrefix(base, ".#") ||
		strings.Contains(base, ".back")
}
