package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"route-optimizer-service/internal/domain"
)

func testRedisCache(t *testing.T) *RedisGeocodeCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisGeocodeCache(client, 0)
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c := testRedisCache(t)
	ctx := context.Background()

	want := domain.Coordinates{Lat: 33.44, Lng: -112.07}
	if err := c.Put(ctx, "1901 w madison st", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "1901 w madison st")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRedisGeocodeCacheMiss(t *testing.T) {
	c := testRedisCache(t)

	_, ok, err := c.Get(context.Background(), "never stored")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss")
	}
}

func TestRedisGeocodeCacheOverwrite(t *testing.T) {
	c := testRedisCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "addr", domain.Coordinates{Lat: 1, Lng: 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.Put(ctx, "addr", domain.Coordinates{Lat: 2, Lng: 2}); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "addr")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Lat != 2 || got.Lng != 2 {
		t.Fatalf("got %+v, want updated entry", got)
	}
}

func TestRedisGeocodeCacheRejectsEmptyKey(t *testing.T) {
	c := testRedisCache(t)

	if err := c.Put(context.Background(), "", domain.Coordinates{}); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestMemoryGeocodeCacheRoundTrip(t *testing.T) {
	c := NewMemoryGeocodeCache()
	ctx := context.Background()

	if _, ok, _ := c.Get(ctx, "addr"); ok {
		t.Fatal("expected miss on empty cache")
	}

	want := domain.Coordinates{Lat: 5, Lng: 6}
	if err := c.Put(ctx, "addr", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "addr")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
