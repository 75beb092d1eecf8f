package ports

import (
	"context"
	"route-optimizer-service/internal/domain"
)

// Contract for resolving a free-text address into coordinates.
// Implementations wrap remote providers and must honor ctx deadlines;
// failures are reported as *domain.GeocodingError.
type Geocoder interface {
	// Resolve an address to geographic coordinates.
	Resolve(ctx context.Context, address string) (domain.Coordinates, error)
}
