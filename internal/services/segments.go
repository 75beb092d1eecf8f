package services

import (
	"fmt"

	"route-optimizer-service/internal/domain"
)

// BuildSegments derives the per-edge records for a solved route.
//
// Distances come from the raw (vehicle-adjusted, unweighted) matrix, never
// the strategy-weighted costs the solver optimized. Instructions are
// fixed-template strings; there is no natural-language generation beyond
// interpolation.
func BuildSegments(stops []domain.Stop, route domain.Route, matrix domain.CostMatrix, profile domain.VehicleProfile) ([]domain.Segment, error) {
	if matrix.Dim() != len(stops) {
		return nil, fmt.Errorf("build segments: matrix covers %d stops, got %d", matrix.Dim(), len(stops))
	}

	segments := make([]domain.Segment, 0, len(route.Order))
	for i := 0; i < len(route.Order)-1; i++ {
		from, to := route.Order[i], route.Order[i+1]
		if from < 0 || from >= len(stops) || to < 0 || to >= len(stops) {
			return nil, fmt.Errorf("build segments: route index out of range (%d -> %d)", from, to)
		}

		distance := matrix.At(from, to)
		duration := EstimateTravelTime(distance, profile)

		segments = append(segments, domain.Segment{
			From:            stops[from],
			To:              stops[to],
			DistanceMeters:  distance,
			DurationSeconds: duration,
			Instructions: []string{
				fmt.Sprintf("Depart from %s", stopLabel(stops[from])),
				fmt.Sprintf("Travel %.2f km (about %s by %s)", distance/1000, formatDuration(duration), profile.Kind),
				fmt.Sprintf("Arrive at %s", stopLabel(stops[to])),
			},
		})
	}

	return segments, nil
}

func stopLabel(s domain.Stop) string {
	if s.Address != "" {
		return s.Address
	}
	return fmt.Sprintf("%.5f, %.5f", s.Coords.Lat, s.Coords.Lng)
}

func formatDuration(seconds float64) string {
	total := int(seconds + 0.5)
	if total < 60 {
		return fmt.Sprintf("%d sec", total)
	}
	if total < 3600 {
		return fmt.Sprintf("%d min", total/60)
	}
	return fmt.Sprintf("%dh %02dm", total/3600, (total%3600)/60)
}
