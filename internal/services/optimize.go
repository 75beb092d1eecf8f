package services

import (
	"context"
	"fmt"
	"time"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/ports"
)

// One location of an optimization request, before resolution. Either
// coordinates or an address must be present; the optional attributes are
// carried onto the resolved Stop.
type StopRequest struct {
	Address     string
	Lat         *float64
	Lng         *float64
	Category    string
	Priority    int
	Window      *domain.TimeWindow
	ServiceTime time.Duration
}

type OptimizeRequest struct {
	Stops      []StopRequest
	Strategy   domain.Strategy
	Vehicle    domain.VehicleKind
	StartIndex int
	RoundTrip  bool
	TimeBudget time.Duration
}

type OptimizeResult struct {
	Stops               []domain.Stop
	Route               domain.Route
	Segments            []domain.Segment
	Stats               domain.SolveStats
	TotalDistanceMeters float64
	TotalTimeSeconds    float64
}

// OptimizeStops runs the full pipeline for one request: validate, resolve
// locations, build the cost matrix, solve, and assemble segments.
//
// Validation happens before any geocoding or solver work. A location that
// fails to geocode aborts the whole request (solving never proceeds with
// partial coordinates); its error carries the 1-based location position.
func OptimizeStops(ctx context.Context, req OptimizeRequest, geocoder ports.Geocoder, solver *Solver) (*OptimizeResult, error) {
	if len(req.Stops) < 2 {
		return nil, &domain.InvalidInputError{Reason: "at least 2 locations are required"}
	}
	if req.StartIndex < 0 || req.StartIndex >= len(req.Stops) {
		return nil, &domain.InvalidInputError{Reason: "start index out of range"}
	}

	for i, s := range req.Stops {
		if (s.Lat == nil || s.Lng == nil) && s.Address == "" {
			return nil, &domain.InvalidInputError{Index: i + 1, Reason: "either address or coordinates must be provided"}
		}
		if s.ServiceTime < 0 {
			return nil, &domain.InvalidInputError{Index: i + 1, Reason: "service time must be non-negative"}
		}
	}

	profile, err := domain.ProfileFor(req.Vehicle)
	if err != nil {
		return nil, &domain.InvalidInputError{Reason: err.Error()}
	}

	stops := make([]domain.Stop, 0, len(req.Stops))
	coords := make([]domain.Coordinates, 0, len(req.Stops))
	for i, s := range req.Stops {
		var c domain.Coordinates
		address := s.Address

		if s.Lat != nil && s.Lng != nil {
			c = domain.Coordinates{Lat: *s.Lat, Lng: *s.Lng}
			if address == "" {
				address = fmt.Sprintf("%v, %v", c.Lat, c.Lng)
			}
		} else {
			c, err = geocoder.Resolve(ctx, s.Address)
			if err != nil {
				return nil, fmt.Errorf("error processing location %d: %w", i+1, err)
			}
		}

		priority := s.Priority
		if priority == 0 {
			priority = 1
		}

		stops = append(stops, domain.Stop{
			ID:          fmt.Sprintf("loc_%d", i),
			Address:     address,
			Coords:      c,
			Category:    s.Category,
			Priority:    priority,
			Window:      s.Window,
			ServiceTime: s.ServiceTime,
		})
		coords = append(coords, c)
	}

	matrix, err := BuildCostMatrix(coords, profile)
	if err != nil {
		return nil, err
	}

	route, stats, err := SolveWithStats(ctx, solver, matrix, SolveOptions{
		Strategy:   req.Strategy,
		StartIndex: req.StartIndex,
		RoundTrip:  req.RoundTrip,
		TimeBudget: req.TimeBudget,
	})
	if err != nil {
		return nil, err
	}

	segments, err := BuildSegments(stops, route, matrix, profile)
	if err != nil {
		return nil, err
	}

	totalDistance := 0.0
	for _, seg := range segments {
		totalDistance += seg.DistanceMeters
	}

	return &OptimizeResult{
		Stops:               stops,
		Route:               route,
		Segments:            segments,
		Stats:               stats,
		TotalDistanceMeters: totalDistance,
		TotalTimeSeconds:    EstimateTravelTime(totalDistance, profile),
	}, nil
}
