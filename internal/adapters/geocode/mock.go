package geocode

import (
	"context"

	"route-optimizer-service/internal/domain"
)

// MockGeocoder resolves from a canned address table. Test helper.
type MockGeocoder struct {
	m     map[string]domain.Coordinates
	calls int
}

func NewMockGeocoder(entries map[string]domain.Coordinates) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(entries))
	for addr, c := range entries {
		m[addr] = c
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	g.calls++
	c, ok := g.m[address]
	if !ok {
		return domain.Coordinates{}, &domain.GeocodingError{Address: address, Reason: "no results"}
	}
	return c, nil
}

// Calls reports how many lookups reached the mock (cache-bypass checks).
func (g *MockGeocoder) Calls() int { return g.calls }
