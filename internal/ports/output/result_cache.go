package output

import "context"

// ResultCache interface - Output port
// Maps a normalized query to the rendered result message of its first successful search.
// Implementations must be safe for concurrent use.
type ResultCache interface {
	// Get returns the cached message and whether it was present
	Get(ctx context.Context, key string) (string, bool, error)
	// Put stores the message unless the key already holds one
	Put(ctx context.Context, key, rendered string) error
}
