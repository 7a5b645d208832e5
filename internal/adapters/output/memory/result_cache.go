package memory

import (
	"context"
	"sync"

	"gamelink-finder/internal/ports/output"
)

// Compile-time check to ensure MemoryResultCache implements ResultCache interface
var _ output.ResultCache = (*MemoryResultCache)(nil)

// MemoryResultCache struct - Output adapter keeping rendered search results in process.
// Entries are never replaced. When maxEntries is reached the oldest entry is evicted.
type MemoryResultCache struct {
	mu         sync.RWMutex
	entries    map[string]string
	order      []string
	maxEntries int
}

// NewMemoryResultCache creates a cache bounded to maxEntries, zero means unbounded
func NewMemoryResultCache(maxEntries int) *MemoryResultCache {
	return &MemoryResultCache{
		entries:    make(map[string]string),
		maxEntries: maxEntries,
	}
}

// Get returns the rendered result stored for key
func (c *MemoryResultCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rendered, ok := c.entries[key]
	return rendered, ok, nil
}

// Put stores rendered under key unless the key is already present
func (c *MemoryResultCache) Put(_ context.Context, key, rendered string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return nil
	}

	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = rendered
	c.order = append(c.order, key)
	return nil
}

// Len returns the number of cached entries
func (c *MemoryResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
