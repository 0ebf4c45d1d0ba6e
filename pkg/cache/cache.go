// Package cache stores parsed grids and rendered artifacts between runs.
//
// A [Cache] is a byte-oriented key/value store with per-entry TTL. Four
// backends are provided:
//
//   - [NullCache]: stores nothing (--no-cache)
//   - [FileCache]: one JSON file per entry under the user cache dir
//   - [RedisCache]: a shared Redis instance, for servers
//   - [MongoCache]: a MongoDB collection with a TTL index, for servers
//
// Keys come from a [Keyer] so that every layer of the pipeline derives
// them the same way; see [DefaultKeyer] and [ScopedKeyer].
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Default time-to-live per entry kind.
const (
	TTLGrid     = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
	TTLHTTP     = time.Hour
)

// Cache is a key/value store for opaque bytes.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// DefaultDir returns the directory used by the file backend when none is
// configured: $XDG_CACHE_HOME/calgrid or its platform equivalent.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "calgrid"), nil
}
