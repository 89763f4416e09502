package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ContentWatcher reloads a content file whenever it changes on disk. Reloads
// happen on the watcher goroutine; the latest good document is handed over
// through Take, which the game loop polls.
type ContentWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup

	mu      sync.Mutex
	pending *Content
	lastErr error
}

// reloadSettle coalesces the burst of events editors emit on save.
const reloadSettle = 50 * time.Millisecond

// WatchContent starts watching path. The directory is watched rather than the
// file so that atomic-rename saves are seen.
func WatchContent(path string) (*ContentWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch content: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch content: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch content %s: %w", abs, err)
	}
	cw := &ContentWatcher{
		path:    abs,
		watcher: w,
		done:    make(chan struct{}),
	}
	cw.wg.Add(1)
	go cw.loop()
	return cw, nil
}

func (cw *ContentWatcher) loop() {
	defer cw.wg.Done()
	var settle <-chan time.Time
	for {
		select {
		case <-cw.done:
			return
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != cw.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				settle = time.After(reloadSettle)
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[content] Warning: watcher error: %v", err)
		case <-settle:
			settle = nil
			cw.reload()
		}
	}
}

func (cw *ContentWatcher) reload() {
	c, err := LoadContent(cw.path)
	cw.mu.Lock()
	defer cw.mu.Unlock()
	if err != nil {
		log.Printf("[content] Warning: keeping previous content: %v", err)
		cw.lastErr = err
		return
	}
	log.Printf("[content] Reloaded %s", cw.path)
	cw.pending = c
	cw.lastErr = nil
}

// Take returns a freshly reloaded document, or nil when nothing changed since
// the last call.
func (cw *ContentWatcher) Take() *Content {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	c := cw.pending
	cw.pending = nil
	return c
}

// Err returns the error of the most recent failed reload.
func (cw *ContentWatcher) Err() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return cw.lastErr
}

// Close stops watching.
func (cw *ContentWatcher) Close() error {
	close(cw.done)
	err := cw.watcher.Close()
	cw.wg.Wait()
	return err
}
