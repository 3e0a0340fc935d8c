// Package cache provides layout-result caching for the Chartframe pipeline.
//
// Computed layouts are cheap but not free, and server deployments recompute
// the same specs constantly. The pipeline caches serialized layouts keyed by
// spec content hash. Backends:
//   - FileCache: XDG cache directory, for CLI usage
//   - RedisCache: shared cache for multi-instance server deployments
//   - NullCache: caching disabled
package cache

import (
	"context"
	"fmt"
	"time"
)

// Default TTLs per cached content type. Specs and layouts are pure
// functions of their inputs, so the TTLs exist only to bound disk usage.
const (
	TTLSpec   = 7 * 24 * time.Hour
	TTLLayout = 7 * 24 * time.Hour
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the cacheable pipeline stages.
type Keyer interface {
	// SpecKey generates a key for a parsed chart spec, from its content hash.
	SpecKey(specHash string) string

	// LayoutKey generates a key for a computed layout, from the spec content
	// hash and the canvas dimensions the layout was computed for.
	LayoutKey(specHash string, width, height int) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SpecKey implements Keyer.
func (k *DefaultKeyer) SpecKey(specHash string) string {
	return hashKey("spec", specHash)
}

// LayoutKey implements Keyer.
func (k *DefaultKeyer) LayoutKey(specHash string, width, height int) string {
	return hashKey("layout", specHash, fmt.Sprintf("%dx%d", width, height))
}
