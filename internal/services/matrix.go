package services

import (
	"route-optimizer-service/internal/domain"
)

// BuildCostMatrix computes the symmetric pairwise travel-cost matrix for
// the given coordinates under a vehicle profile.
//
// Each off-diagonal entry is the great-circle distance in meters scaled by
// the profile multiplier; the diagonal is zero. Entries are mirrored so
// matrix[i][j] == matrix[j][i] always holds.
func BuildCostMatrix(coords []domain.Coordinates, profile domain.VehicleProfile) (domain.CostMatrix, error) {
	if len(coords) < 2 {
		return nil, &domain.InvalidInputError{Reason: "at least 2 locations are required"}
	}

	n := len(coords)
	matrix := make(domain.CostMatrix, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cost := coords[i].DistanceTo(coords[j]) * profile.Multiplier
			matrix[i][j] = cost
			matrix[j][i] = cost
		}
	}

	return matrix, nil
}
