// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package state

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports external modifications to the state files so that
// the UI can offer reloading them.
//
// The parent directories are watched rather than the files
// themselves: editors and taskwell's own atomic saves replace files
// by rename, which would silently detach a per-file watch.
type Watcher struct {
	watcher *fsnotify.Watcher
	// files maps cleaned paths to watch for.
	files map[string]struct{}
	// changes receives the path of each modified state file.
	changes chan string
	done    chan struct{}
}

// NewWatcher starts watching the given files. Close must be called to
// release the underlying OS watches.
func NewWatcher(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &Watcher{
		watcher: fsw,
		files:   make(map[string]struct{}, len(paths)),
		changes: make(chan string, 8),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, path := range paths {
		path = filepath.Clean(path)
		w.files[path] = struct{}{}
		dirs[filepath.Dir(path)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	go w.run()
	return w, nil
}

// Changes returns the channel delivering paths of modified state
// files. The channel is closed when the watcher shuts down.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.changes)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable for the UI; the next
			// explicit load surfaces any real problem.
		}
	}
}

// handleEvent forwards writes, creates, and renames that touch one of
// the watched files.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	path := filepath.Clean(event.Name)
	if _, ok := w.files[path]; !ok {
		return
	}
	select {
	case w.changes <- path:
	default:
		// A pending notification already covers the change.
	}
}
