package cache

import (
	"context"
	"maps"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// RistrettoCache is an in-process snapshot cache backed by ristretto.
// Each snapshot has a cost of 1, so maxEntries bounds the entry count.
type RistrettoCache struct {
	rc *ristretto.Cache[string, map[string]string]
}

// NewRistrettoCache creates a new ristretto-backed cache holding at most
// maxEntries snapshots.
func NewRistrettoCache(maxEntries int64) (*RistrettoCache, error) {
	rc, err := ristretto.NewCache(&ristretto.Config[string, map[string]string]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &RistrettoCache{rc: rc}, nil
}

// Has reports whether an entry exists under name.
func (c *RistrettoCache) Has(_ context.Context, name string) (bool, error) {
	_, ok := c.rc.Get(name)
	return ok, nil
}

// Get retrieves a snapshot by name.
func (c *RistrettoCache) Get(_ context.Context, name string) (map[string]string, bool, error) {
	texts, ok := c.rc.Get(name)
	if !ok {
		return nil, false, nil
	}
	return maps.Clone(texts), true, nil
}

// Put stores a snapshot under name with the given TTL.
func (c *RistrettoCache) Put(_ context.Context, name string, texts map[string]string, ttl time.Duration) error {
	c.rc.SetWithTTL(name, maps.Clone(texts), 1, ttl)
	c.rc.Wait()
	return nil
}

// Close releases the cache resources.
func (c *RistrettoCache) Close() {
	c.rc.Close()
}

// Verify RistrettoCache implements SnapshotCache
var _ SnapshotCache = (*RistrettoCache)(nil)
