package ports

import (
	"context"
	"route-optimizer-service/internal/domain"
)

// Port: a boundary for caching resolved addresses across requests.
// Keys are expected to be normalized by the caller. A miss is reported as
// (zero, false, nil); errors are reserved for backend failures.
type GeocodeCache interface {
	// Fetch cached coordinates for the given address key.
	Get(ctx context.Context, address string) (domain.Coordinates, bool, error)
	// Store an address -> coordinate mapping in the cache.
	Put(ctx context.Context, address string, coords domain.Coordinates) error
}
