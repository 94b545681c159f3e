// Package cache memoizes short-link redirect targets. Mappings from a short
// code to its canonical URL are stable, unlike the signed media URLs the
// sources return, which are never cached.
package cache

// Cache is a key-value store for resolved redirect targets.
// Implementations may be in-memory or backed by Redis/Valkey.
type Cache interface {
	// Get retrieves a value by key. Returns the value and true if found.
	Get(key string) (string, bool)

	// Set stores a value with the given key, overwriting any existing entry.
	Set(key, value string)

	// Len returns the number of entries currently in the cache.
	Len() int

	// Close releases any resources held by the cache (e.g., network connections).
	// For in-memory caches, this is a no-op.
	Close() error
}
