package driven

import "context"

// Fetcher reads named resources relative to a source base location.
// Any transport (filesystem, HTTP, embedded) is interchangeable as long as
// it yields the raw bytes of the named resource.
type Fetcher interface {
	// Fetch returns the content of the named resource.
	// Returns an error wrapping domain.ErrResourceUnavailable when the
	// resource cannot be read.
	Fetch(ctx context.Context, name string) ([]byte, error)

	// Location describes the base location for logs and status output.
	Location() string
}

// Lister enumerates resource names available from a source.
type Lister interface {
	// List returns resource names relative to the source base.
	List(ctx context.Context) ([]string, error)
}

// Watcher signals when the resources of a source change.
type Watcher interface {
	// Watch calls onChange after resources change until ctx is cancelled.
	// It blocks until ctx is done or watching fails.
	Watch(ctx context.Context, onChange func()) error
}
