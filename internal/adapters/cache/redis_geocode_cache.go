package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"route-optimizer-service/internal/domain"
)

const redisGeocodePrefix = "geocode:"

// Redis-backed geocode cache. Entries are stored as small JSON blobs so a
// cache shared between processes stays readable. A zero TTL keeps entries
// for the lifetime of the Redis instance.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, ttl: ttl}
}

type redisGeocodeEntry struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Fetch cached coordinates for the given address key.
func (c *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	if c.client == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: redis client is nil")
	}

	raw, err := c.client.Get(ctx, redisGeocodePrefix+address).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: redis get %q: %w", address, err)
	}

	var entry redisGeocodeEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: decode entry %q: %w", address, err)
	}

	return domain.Coordinates{Lat: entry.Lat, Lng: entry.Lng}, true, nil
}

// Store an address -> coordinate mapping in the cache.
func (c *RedisGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) error {
	if c.client == nil {
		return errors.New("geocode cache: redis client is nil")
	}
	if address == "" {
		return errors.New("insert geocode cache: empty address key")
	}

	raw, err := json.Marshal(redisGeocodeEntry{Lat: coords.Lat, Lng: coords.Lng})
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode entry %q: %w", address, err)
	}

	if err := c.client.Set(ctx, redisGeocodePrefix+address, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert geocode cache: redis set %q: %w", address, err)
	}

	return nil
}
