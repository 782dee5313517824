// Package cache provides snapshot cache implementations.
package cache

import (
	"context"
	"time"
)

// SnapshotCache is the interface for caching per-locale text snapshots.
// Entries are keyed by name (table_locale) and hold a full snapshot; a
// backend may be absent entirely, in which case the registry loads straight
// from the durable store.
type SnapshotCache interface {
	// Has reports whether an unexpired entry exists under name.
	Has(ctx context.Context, name string) (bool, error)

	// Get retrieves a cached snapshot. The boolean indicates a cache hit.
	Get(ctx context.Context, name string) (map[string]string, bool, error)

	// Put stores a snapshot under name with the given TTL. A zero TTL means
	// the entry has no automatic expiration.
	Put(ctx context.Context, name string, texts map[string]string, ttl time.Duration) error
}
