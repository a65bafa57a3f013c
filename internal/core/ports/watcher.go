package ports

import (
	"context"
	"iter"
)

//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
)

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the path of the file that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher defines the interface for watching file changes.
type Watcher interface {
	// Start begins watching the given file. It returns an error if the watcher fails to start.
	Start(ctx context.Context, path string) error
	// Retarget moves a started watcher to another file. Events for the previous file stop.
	Retarget(path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}
