package cache

import (
	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

func init() {
	Register("memory", newMemoryCache)
}

// memoryCache wraps hashicorp/golang-lru/v2/expirable to implement the Cache interface.
type memoryCache struct {
	inner *lru.LRU[string, string]
}

func newMemoryCache(cfg ProviderConfig) (Cache, error) {
	return &memoryCache{
		inner: lru.NewLRU[string, string](cfg.Size, nil, cfg.TTL),
	}, nil
}

func (m *memoryCache) Get(key string) (string, bool) {
	return m.inner.Get(key)
}

func (m *memoryCache) Set(key, value string) {
	m.inner.Add(key, value)
}

func (m *memoryCache) Len() int {
	return m.inner.Len()
}

func (m *memoryCache) Close() error {
	return nil
}
