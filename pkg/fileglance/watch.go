package fileglance

import (
	"time"

	"github.com/fileglance/fileglance/pkg/logging"
	"github.com/fsnotify/fsnotify"
)

var watchDebounce = 250 * time.Millisecond

// dirWatcher triggers a refresh when the watched directory changes on
// disk. A burst of events within the debounce window refreshes once.
type dirWatcher struct {
	fsw     *fsnotify.Watcher
	events  chan fsnotify.Event
	errors  chan error
	refresh func()
	dir     string
}

// newDirWatcher returns nil when inotify is unavailable; the browser
// then degrades to manual refresh.
func newDirWatcher(refresh func()) *dirWatcher {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Warn("directory watching disabled", logging.Err(err))
		return nil
	}
	w := &dirWatcher{
		fsw:     fsw,
		events:  fsw.Events,
		errors:  fsw.Errors,
		refresh: refresh,
	}
	go w.loop()
	return w
}

func (w *dirWatcher) loop() {
	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false
	for {
		select {
		case _, ok := <-w.events:
			if !ok {
				return
			}
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(watchDebounce)
			pending = true
		case err, ok := <-w.errors:
			if !ok {
				return
			}
			logging.Warn("directory watch error", logging.Err(err))
		case <-timer.C:
			pending = false
			w.refresh()
		}
	}
}

// Watch moves the watch to dir, dropping the previous one.
func (w *dirWatcher) Watch(dir string) {
	if w == nil {
		return
	}
	if w.dir != "" {
		_ = w.fsw.Remove(w.dir)
	}
	if err := w.fsw.Add(dir); err != nil {
		logging.Warn("cannot watch directory", logging.String("dir", dir), logging.Err(err))
		w.dir = ""
		return
	}
	w.dir = dir
}

func (w *dirWatcher) Close() {
	if w == nil {
		return
	}
	_ = w.fsw.Close()
}
