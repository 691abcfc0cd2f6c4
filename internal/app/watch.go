package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single file.
type Watcher struct {
	w    *fsnotify.Watcher
	path string
	done chan struct{}
}

// changeOps leave content at the watched name. A rename-save arrives as
// Create. Remove and Rename of the name itself are skipped until the file
// is back.
const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Chmod

// Watch calls onModify from its own goroutine each time path changes.
// The parent directory is watched so the file can be replaced by rename.
// Watcher errors go to onError. Events are not coalesced.
func Watch(path string, onModify func(fsnotify.Event), onError func(error)) (*Watcher, error) {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w := &Watcher{w: fw, path: path, done: make(chan struct{})}
	go w.loop(onModify, onError)
	return w, nil
}

func (w *Watcher) loop(onModify func(fsnotify.Event), onError func(error)) {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) == w.path && ev.Op&changeOps != 0 {
				onModify(ev)
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// Close stops watching and waits for the event goroutine to exit.
func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return err
}
