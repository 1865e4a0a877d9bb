// Package cache provides content-addressed caching of repack results.
//
// Repacking the same graph with the same settings always produces the
// same result, so the CLI caches serialized results keyed by a hash of
// the input graph and the run options. A warm cache turns repeated runs
// over large font graphs into a file read.
//
// The [Cache] interface has two implementations:
//   - [FileCache]: entries stored as files under a directory
//   - [NullCache]: no-op, for tests or --no-cache runs
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was found; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
