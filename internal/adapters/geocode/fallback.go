package geocode

import (
	"context"
	"log"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/ports"
)

// FallbackGeocoder tries providers in order and returns the first
// successful resolution. Only when every provider fails does it report a
// GeocodingError carrying the last failure.
type FallbackGeocoder struct {
	providers []ports.Geocoder
}

func NewFallbackGeocoder(providers ...ports.Geocoder) *FallbackGeocoder {
	return &FallbackGeocoder{providers: providers}
}

// Resolve an address to geographic coordinates.
func (g *FallbackGeocoder) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	if len(g.providers) == 0 {
		return domain.Coordinates{}, &domain.GeocodingError{Address: address, Reason: "no geocoding providers configured"}
	}

	var lastErr error
	for i, p := range g.providers {
		coords, err := p.Resolve(ctx, address)
		if err == nil {
			return coords, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return domain.Coordinates{}, ctx.Err()
		}
		if i < len(g.providers)-1 {
			log.Printf("geocode provider %d failed, trying next: %v", i+1, err)
		}
	}

	if gerr, ok := lastErr.(*domain.GeocodingError); ok {
		return domain.Coordinates{}, gerr
	}
	return domain.Coordinates{}, &domain.GeocodingError{Address: address, Reason: lastErr.Error()}
}
