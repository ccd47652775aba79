package asset

import (
	"path/filepath"
	"sync"
)

// Cache is a concurrency-safe asset cache keyed by cleaned path. Decoding
// failures are cached too, so a broken file is read once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	load  func(path string) (*Image, error)
}

type cacheEntry struct {
	img *Image
	err error
}

// NewCache creates an empty cache that decodes with Load.
func NewCache() *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		load:  Load,
	}
}

// Get returns the decoded image at path, loading it on first use.
func (c *Cache) Get(path string) (*Image, error) {
	key := filepath.Clean(path)

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[key]; exists {
		c.mu.RUnlock()
		return entry.img, entry.err
	}
	c.mu.RUnlock()

	// Slow path: decode outside the lock
	img, err := c.load(key)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[key]; exists {
		return entry.img, entry.err
	}
	c.items[key] = &cacheEntry{img: img, err: err}
	return img, err
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
