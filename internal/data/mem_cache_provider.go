package data

import (
	"context"
	"sync"
	"time"

	"testdeck/internal/metrics"
)

const memCacheName = "memory"

type memEntry struct {
	value     []byte
	expiresAt time.Time
}

type MemCache struct {
	mutex sync.RWMutex
	cache map[string]memEntry
}

func NewMemCache() *MemCache {
	return &MemCache{
		cache: make(map[string]memEntry),
	}
}

func (c *MemCache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mutex.RLock()
	entry, exists := c.cache[key]
	c.mutex.RUnlock()

	if !exists || time.Now().After(entry.expiresAt) {
		metrics.CacheMisses.WithLabelValues(memCacheName).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(memCacheName).Inc()
	return entry.value, true
}

func (c *MemCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache[key] = memEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}

	metrics.CacheItems.WithLabelValues(memCacheName).Set(float64(len(c.cache)))
}

func (c *MemCache) Delete(ctx context.Context, key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.cache, key)
	metrics.CacheItems.WithLabelValues(memCacheName).Set(float64(len(c.cache)))
}

func (c *MemCache) Size(ctx context.Context) int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.cache)
}
