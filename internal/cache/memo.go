package cache

import "sync"

// MemoStore is a mutex-guarded map cache. Entry count is bounded by the
// number of distinct keys between purges (for grid aggregation that is
// categories x subcategories per revision), so there is no eviction policy;
// Purge drops everything wholesale on invalidation.
type MemoStore[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewMemoStore creates an empty memo store
func NewMemoStore[T any]() *MemoStore[T] {
	return &MemoStore[T]{
		items: make(map[string]T),
	}
}

// Get retrieves a value from the cache
func (c *MemoStore[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, exists := c.items[key]
	return data, exists
}

// Set stores a value in the cache
func (c *MemoStore[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = data
}

// Purge removes every entry
func (c *MemoStore[T]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]T)
}

// Size returns the current number of items in the cache
func (c *MemoStore[T]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
