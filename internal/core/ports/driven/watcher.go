package driven

import "context"

// FileWatcher reports changes to a single file.
type FileWatcher interface {
	// Watch calls onChange each time path is written or replaced, until ctx is done.
	// Errors from the underlying watcher are passed to onError.
	Watch(ctx context.Context, path string, onChange func(), onError func(error)) error
}
