// Package sessioncache is the client's persisted session cache: the local
// equivalent of browser storage. It holds one serialized session user under a
// well-known key and is a hint only, for fast first paint and cross-context
// sync, never for an authorization decision the backend could have made.
package sessioncache

import "context"

// KeyUser is the well-known key the serialized session user lives under.
const KeyUser = "user"

// Repository is a small key/value store with a monotonically increasing
// revision counter. Every write (including Clear) advances the revision, so
// watchers can detect changes made by other processes sharing the cache file.
type Repository interface {
	// Get returns the value for key, or nil when absent or cleared.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key and advances the revision.
	Put(ctx context.Context, key string, value []byte) error
	// Clear removes the value under key. Implemented as a tombstone write so
	// the revision still advances and other contexts observe the removal.
	Clear(ctx context.Context, key string) error
	// Revision returns the current write counter.
	Revision(ctx context.Context) (int64, error)
}
