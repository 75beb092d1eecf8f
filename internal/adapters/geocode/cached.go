package geocode

import (
	"context"
	"log"
	"strings"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/ports"
)

// CachedGeocoder consults a cache keyed by normalized address text before
// delegating to the wrapped geocoder. Cache backend failures degrade to a
// direct lookup rather than failing the request.
type CachedGeocoder struct {
	inner ports.Geocoder
	cache ports.GeocodeCache
}

func NewCachedGeocoder(inner ports.Geocoder, cache ports.GeocodeCache) *CachedGeocoder {
	return &CachedGeocoder{inner: inner, cache: cache}
}

// normalize ensures consistent cache keys by collapsing whitespace and
// case-folding.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Resolve an address to geographic coordinates.
func (g *CachedGeocoder) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	key := normalize(address)
	if key == "" {
		return domain.Coordinates{}, &domain.GeocodingError{Address: address, Reason: "address must be non-empty"}
	}

	if g.cache != nil {
		coords, ok, err := g.cache.Get(ctx, key)
		if err != nil {
			log.Printf("geocode cache get failed key=%q err=%v", key, err)
		} else if ok {
			return coords, nil
		}
	}

	coords, err := g.inner.Resolve(ctx, address)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, key, coords); err != nil {
			log.Printf("geocode cache put failed key=%q err=%v", key, err)
		}
	}

	return coords, nil
}
