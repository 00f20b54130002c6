// Package cache provides the memoization store backing grid aggregation.
package cache

// Cache defines a generic cache interface
type Cache[T any] interface {
	// Get retrieves a value from the cache
	Get(key string) (T, bool)

	// Set stores a value in the cache
	Set(key string, data T)

	// Purge removes every entry
	Purge()

	// Size returns the current number of items in the cache
	Size() int
}
