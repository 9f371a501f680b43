// Package cache provides byte-blob caching for downloaded assets.
//
// The only cached artifact in ctviz is the font archive fetched on first
// use: caching it means a fresh resource directory (a new experiment run,
// a wiped scratch disk) can be populated without going back to the
// network. Three backends are provided:
//
//   - FileCache: directory-backed, for normal CLI usage
//   - RedisCache: shared cache for lab machines behind a common Redis
//   - NullCache: no-op, for tests and --no-cache runs
//
// Keys are opaque strings; [ArchiveKey] derives the conventional key for
// a font archive URL.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte blobs with optional expiration.
type Cache interface {
	// Get retrieves the value for key. The second return value reports
	// whether the key was present (a miss is not an error).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}

// ArchiveKey returns the cache key for a font archive URL.
func ArchiveKey(url string) string {
	return "archive:" + Hash([]byte(url))
}
