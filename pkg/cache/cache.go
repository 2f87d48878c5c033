// Package cache stores encoded render artifacts by content key.
//
// Rendering a deep frame at print resolution is expensive, and repeated CLI
// invocations with the same parameters produce byte-identical output. The
// [Cache] interface abstracts the backing store: [FileCache] keeps entries
// under the user's cache directory, [NullCache] disables caching.
//
// Keys are derived by a [Keyer] from every input that affects the output, so
// a change to depth, canvas size, window, palette, format or supersampling
// yields a fresh key:
//
//	keys := cache.NewDefaultKeyer()
//	fk := keys.FrameKey(params, colormap.DefaultHelix)
//	ak := keys.ArtifactKey(fk, cache.ArtifactKeyOpts{Format: "png", Supersample: 2})
//	if data, hit, _ := c.Get(ctx, ak); hit {
//	    // reuse data
//	}
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by string with optional expiry.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	// Missing and expired entries are misses, not errors.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// DefaultTTL is how long rendered artifacts are kept.
const DefaultTTL = 7 * 24 * time.Hour
