package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"route-optimizer-service/internal/domain"
)

func squareStops() []domain.Stop {
	coords := squareCoords()
	stops := make([]domain.Stop, 0, len(coords))
	names := []string{"Depot", "East Gate", "North East", "North Gate"}
	for i, c := range coords {
		stops = append(stops, domain.Stop{
			ID:       "loc_" + string(rune('0'+i)),
			Address:  names[i],
			Coords:   c,
			Priority: 1,
		})
	}
	return stops
}

func TestBuildSegmentsCoversEveryEdge(t *testing.T) {
	profile := carProfile(t)
	matrix, err := BuildCostMatrix(squareCoords(), profile)
	require.NoError(t, err)

	route, _, err := NewSolver().Solve(context.Background(), matrix, SolveOptions{RoundTrip: true})
	require.NoError(t, err)

	segments, err := BuildSegments(squareStops(), route, matrix, profile)
	require.NoError(t, err)
	require.Len(t, segments, len(route.Order)-1)

	total := 0.0
	for i, seg := range segments {
		from, to := route.Order[i], route.Order[i+1]
		require.Equal(t, squareStops()[from].Address, seg.From.Address)
		require.Equal(t, squareStops()[to].Address, seg.To.Address)
		require.InEpsilon(t, matrix.At(from, to), seg.DistanceMeters, 1e-12)
		require.InEpsilon(t, EstimateTravelTime(seg.DistanceMeters, profile), seg.DurationSeconds, 1e-12)
		total += seg.DistanceMeters
	}

	// Segments report raw matrix distance, which for the distance strategy
	// equals the solver objective.
	require.InEpsilon(t, route.TotalCost, total, 1e-9)
}

func TestBuildSegmentsInstructions(t *testing.T) {
	profile := carProfile(t)
	matrix, err := BuildCostMatrix(squareCoords(), profile)
	require.NoError(t, err)

	route, _, err := NewSolver().Solve(context.Background(), matrix, SolveOptions{})
	require.NoError(t, err)

	segments, err := BuildSegments(squareStops(), route, matrix, profile)
	require.NoError(t, err)

	first := segments[0]
	require.Len(t, first.Instructions, 3)
	require.True(t, strings.HasPrefix(first.Instructions[0], "Depart from "))
	require.Contains(t, first.Instructions[1], "km")
	require.True(t, strings.HasPrefix(first.Instructions[2], "Arrive at "))
	require.Contains(t, first.Instructions[0], first.From.Address)
	require.Contains(t, first.Instructions[2], first.To.Address)
}

func TestBuildSegmentsRejectsMismatchedStops(t *testing.T) {
	profile := carProfile(t)
	matrix, err := BuildCostMatrix(squareCoords(), profile)
	require.NoError(t, err)

	route := domain.Route{Order: []int{0, 1, 2, 3}}
	_, err = BuildSegments(squareStops()[:2], route, matrix, profile)
	require.Error(t, err)
}

func TestEstimateTravelTime(t *testing.T) {
	car := carProfile(t)
	// 25 km at 50 km/h is half an hour.
	require.InEpsilon(t, 1800.0, EstimateTravelTime(25000, car), 1e-12)

	walking, err := domain.ProfileFor(domain.VehicleWalking)
	require.NoError(t, err)
	// 5 km at 5 km/h is an hour.
	require.InEpsilon(t, 3600.0, EstimateTravelTime(5000, walking), 1e-12)

	require.Zero(t, EstimateTravelTime(1000, domain.VehicleProfile{}))
}
