package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"route-optimizer-service/internal/domain"
)

// Unit-square corners used across the engine tests: (lat, lng) degrees.
func squareCoords() []domain.Coordinates {
	return []domain.Coordinates{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 1, Lng: 1},
		{Lat: 1, Lng: 0},
	}
}

func carProfile(t *testing.T) domain.VehicleProfile {
	t.Helper()
	p, err := domain.ProfileFor(domain.VehicleCar)
	require.NoError(t, err)
	return p
}

func TestBuildCostMatrixSymmetry(t *testing.T) {
	matrix, err := BuildCostMatrix(squareCoords(), carProfile(t))
	require.NoError(t, err)
	require.Equal(t, 4, matrix.Dim())

	for i := 0; i < matrix.Dim(); i++ {
		require.Zero(t, matrix.At(i, i))
		for j := 0; j < matrix.Dim(); j++ {
			require.Equal(t, matrix.At(i, j), matrix.At(j, i))
			require.GreaterOrEqual(t, matrix.At(i, j), 0.0)
		}
	}
}

func TestBuildCostMatrixDistanceScale(t *testing.T) {
	matrix, err := BuildCostMatrix(squareCoords(), carProfile(t))
	require.NoError(t, err)

	// One degree of latitude is roughly 111 km.
	require.InDelta(t, 111195, matrix.At(0, 3), 200)
}

func TestBuildCostMatrixVehicleMultiplier(t *testing.T) {
	car, err := BuildCostMatrix(squareCoords(), carProfile(t))
	require.NoError(t, err)

	walking, err := domain.ProfileFor(domain.VehicleWalking)
	require.NoError(t, err)
	walk, err := BuildCostMatrix(squareCoords(), walking)
	require.NoError(t, err)

	// Scaling the multiplier scales every off-diagonal entry by exactly
	// the same factor.
	for i := 0; i < car.Dim(); i++ {
		for j := 0; j < car.Dim(); j++ {
			if i == j {
				require.Zero(t, walk.At(i, j))
				continue
			}
			require.InEpsilon(t, 0.8*car.At(i, j), walk.At(i, j), 1e-12)
		}
	}
}

func TestBuildCostMatrixRejectsTooFewCoords(t *testing.T) {
	_, err := BuildCostMatrix(squareCoords()[:1], carProfile(t))

	var invalid *domain.InvalidInputError
	require.True(t, errors.As(err, &invalid))
}
