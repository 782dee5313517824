package cache

import (
	"context"
	"maps"
	"sync"
	"time"
)

// cacheEntry holds a cached snapshot with its expiry.
type cacheEntry struct {
	texts     map[string]string
	expiresAt time.Time // zero when the entry never expires
}

func (e cacheEntry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// MemoryCache is a thread-safe in-memory snapshot cache.
type MemoryCache struct {
	entries map[string]cacheEntry
	mu      sync.RWMutex
}

// NewMemoryCache creates a new in-memory snapshot cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]cacheEntry)}
}

// Has reports whether an unexpired entry exists under name.
func (c *MemoryCache) Has(_ context.Context, name string) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[name]
	c.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if entry.expired() {
		c.mu.Lock()
		delete(c.entries, name)
		c.mu.Unlock()
		return false, nil
	}
	return true, nil
}

// Get retrieves a snapshot from the cache.
// Returns the snapshot and true if found and not expired, nil and false otherwise.
func (c *MemoryCache) Get(_ context.Context, name string) (map[string]string, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[name]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if entry.expired() {
		c.mu.Lock()
		delete(c.entries, name)
		c.mu.Unlock()
		return nil, false, nil
	}
	return maps.Clone(entry.texts), true, nil
}

// Put stores a snapshot in the cache.
func (c *MemoryCache) Put(_ context.Context, name string, texts map[string]string, ttl time.Duration) error {
	entry := cacheEntry{texts: maps.Clone(texts)}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = entry
	return nil
}

// Len returns the number of entries in the cache (including expired ones).
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries from the cache.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Verify MemoryCache implements SnapshotCache
var _ SnapshotCache = (*MemoryCache)(nil)
