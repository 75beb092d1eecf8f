package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"route-optimizer-service/internal/domain"
)

func TestSolveWithStatsDefaults(t *testing.T) {
	matrix, err := BuildCostMatrix(squareCoords(), carProfile(t))
	require.NoError(t, err)

	route, stats, err := SolveWithStats(context.Background(), NewSolver(), matrix, SolveOptions{})
	require.NoError(t, err)

	require.Equal(t, domain.StrategyDistance, stats.Strategy)
	require.GreaterOrEqual(t, stats.ElapsedSeconds, 0.0)
	require.GreaterOrEqual(t, stats.Iterations, 0)
	require.GreaterOrEqual(t, stats.ImprovementPct, 0.0)
	require.LessOrEqual(t, stats.ImprovementPct, 100.0)
	require.GreaterOrEqual(t, route.TotalCost, 0.0)
}

func TestSolveWithStatsImprovementOverBaseline(t *testing.T) {
	// Identity order on these points zig-zags between the rows, so the
	// solved route must beat the naive baseline by a wide margin.
	coords := []domain.Coordinates{
		{Lat: 0, Lng: 0}, {Lat: 1, Lng: 0.05},
		{Lat: 0, Lng: 0.1}, {Lat: 1, Lng: 0.15},
		{Lat: 0, Lng: 0.2}, {Lat: 1, Lng: 0.25},
	}

	matrix, err := BuildCostMatrix(coords, carProfile(t))
	require.NoError(t, err)

	_, stats, err := SolveWithStats(context.Background(), NewSolver(), matrix, SolveOptions{})
	require.NoError(t, err)
	require.Greater(t, stats.ImprovementPct, 0.0)
	require.LessOrEqual(t, stats.ImprovementPct, 100.0)
}

func TestSolveWithStatsKeepsStrategyLabel(t *testing.T) {
	matrix, err := BuildCostMatrix(squareCoords(), carProfile(t))
	require.NoError(t, err)

	_, stats, err := SolveWithStats(context.Background(), NewSolver(), matrix, SolveOptions{
		Strategy: domain.StrategyBalanced,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StrategyBalanced, stats.Strategy)
}
