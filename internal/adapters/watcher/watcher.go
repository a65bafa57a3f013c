// Package watcher watches the conversion source for changes.
package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher implements ports.Watcher for a single file using fsnotify.
//
// The file's directory is watched rather than the file itself, so editors that replace the
// file through a rename keep being observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	events    chan ports.WatchEvent

	mu     sync.Mutex
	target string
}

// NewWatcher creates a new file watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching path. Events stop when ctx is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
	}
	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
	}
	w.setTarget(abs)

	go w.processEvents(ctx)
	return nil
}

// Retarget switches the watched file to path. The new directory is added before the old one
// is dropped, so a failed switch keeps the previous file watched.
func (w *Watcher) Retarget(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
	}

	previous := w.currentTarget()
	if abs == previous {
		return nil
	}

	dir := filepath.Dir(abs)
	if previous == "" || dir != filepath.Dir(previous) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
		}
		if previous != "" {
			_ = w.fsWatcher.Remove(filepath.Dir(previous))
		}
	}
	w.setTarget(abs)
	return nil
}

func (w *Watcher) setTarget(abs string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.target = abs
}

func (w *Watcher) currentTarget() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.target
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of events for the watched file.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.currentTarget() {
				continue
			}
			watchEvent, ok := convertEvent(event)
			if !ok {
				continue
			}
			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: " + err.Error())
		}
	}
}

func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	switch {
	case event.Has(fsnotify.Write):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpWrite}, true
	case event.Has(fsnotify.Create):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpCreate}, true
	case event.Has(fsnotify.Remove):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpRemove}, true
	case event.Has(fsnotify.Rename):
		return ports.WatchEvent{Path: event.Name, Operation: ports.OpRename}, true
	default:
		return ports.WatchEvent{}, false
	}
}
