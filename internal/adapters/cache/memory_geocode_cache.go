package cache

import (
	"context"
	"sync"

	"route-optimizer-service/internal/domain"
)

// Process-lifetime in-memory geocode cache. Default backend when neither
// Redis nor Postgres is configured. Safe for concurrent use.
type MemoryGeocodeCache struct {
	mu sync.RWMutex
	m  map[string]domain.Coordinates
}

func NewMemoryGeocodeCache() *MemoryGeocodeCache {
	return &MemoryGeocodeCache{m: make(map[string]domain.Coordinates)}
}

// Fetch cached coordinates for the given address key.
func (c *MemoryGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	coords, ok := c.m[address]
	return coords, ok, nil
}

// Store an address -> coordinate mapping in the cache.
func (c *MemoryGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m[address] = coords
	return nil
}
