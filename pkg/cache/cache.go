// Package cache stores rendered chart artifacts and measured layouts.
//
// A [Cache] is a byte store with per-entry TTLs. Four backends exist:
//   - [FileCache] for the CLI, under the XDG cache directory
//   - [NullCache] when caching is disabled
//   - [RedisCache] and [MongoCache] for the API server
//
// Keys are produced by a [Keyer] so every caller derives the same key for
// the same chart definition and render options.
//
// Only derived bytes are cached. Chart and series state is never persisted.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values per entry kind.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a key/value byte store.
//
// Get returns (nil, false, nil) on a miss. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
