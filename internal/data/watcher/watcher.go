// Package watcher notifies on changes to the tracking file so watch
// mode can re-render reports. The parent directory is watched rather
// than the file itself: both `temps` and most editors replace the file
// by renaming a temp file over it, which drops a watch placed directly
// on the path.
package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan struct{}
}

func New(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(path),
		events:  make(chan struct{}, 16),
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return nil, err
	}

	go w.processEvents()
	return w, nil
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default:
				// Pending notification already queued.
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warnf("file monitoring error: %v", err)
		}
	}
}

// Events delivers one notification per batch of changes to the file.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
