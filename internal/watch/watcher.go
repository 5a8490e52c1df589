// Package watch monitors the frame directory with fsnotify and signals
// when the frame sequence should be reloaded. Events are debounced:
// authoring tools rewrite many files in a burst and the player only wants
// one reload per burst.
package watch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cascii/cascii-terminal-decorator/internal/log"
)

const debounceInterval = 250 * time.Millisecond

// Watcher monitors a single frame directory for changes to frame files.
type Watcher struct {
	dir        string
	reloadChan chan struct{}
	stopChan   chan struct{}
	fsWatcher  *fsnotify.Watcher

	mutex   sync.Mutex
	running bool
}

// New creates a watcher for the given frame directory.
func New(dir string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return &Watcher{
		dir:        dir,
		reloadChan: make(chan struct{}, 1),
		stopChan:   make(chan struct{}),
		fsWatcher:  fsWatcher,
	}, nil
}

// ReloadChannel returns the channel that delivers reload signals. It holds
// at most one pending signal; coalesced bursts produce a single reload.
func (w *Watcher) ReloadChannel() <-chan struct{} {
	return w.reloadChan
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return
	}
	w.running = true
	w.mutex.Unlock()

	go w.loop()
	log.With(log.F("dir", w.dir)).Info("watching frame directory")
}

func (w *Watcher) loop() {
	var debounce *time.Timer
	var debounceC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !isFrameFile(event.Name) {
				continue
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) ||
				event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
				if debounce == nil {
					debounce = time.NewTimer(debounceInterval)
					debounceC = debounce.C
				} else {
					debounce.Reset(debounceInterval)
				}
			}

		case <-debounceC:
			debounce = nil
			debounceC = nil
			select {
			case w.reloadChan <- struct{}{}:
			default:
				// A reload is already pending
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Error("fsnotify watcher error: %v", err)

		case <-w.stopChan:
			return
		}
	}
}

// Stop halts the watcher and releases the fsnotify handle.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}
	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.Error("closing fsnotify watcher: %v", err)
	}
	w.running = false
}

func isFrameFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".cframe" || ext == ".txt"
}
