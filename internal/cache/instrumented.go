package cache

// instrumentedCache wraps a Cache and counts hits and misses in Prometheus
// under the given group label. All metric tracking lives in the cache layer
// so callers do not need to manage it.
type instrumentedCache struct {
	inner Cache
	group string
}

func (c *instrumentedCache) Get(key string) (string, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		HitsTotal.WithLabelValues(c.group).Inc()
	} else {
		MissesTotal.WithLabelValues(c.group).Inc()
	}
	return val, ok
}

func (c *instrumentedCache) Set(key, value string) {
	c.inner.Set(key, value)
}

func (c *instrumentedCache) Len() int {
	return c.inner.Len()
}

func (c *instrumentedCache) Close() error {
	return c.inner.Close()
}
