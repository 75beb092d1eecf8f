package domain

// Square pairwise travel-cost matrix in meters (vehicle-adjusted geodesic
// distance). Symmetric by construction with a zero diagonal.
type CostMatrix [][]float64

// Dim returns the number of stops covered by the matrix.
func (m CostMatrix) Dim() int { return len(m) }

// At returns the cost of the edge from stop i to stop j.
func (m CostMatrix) At(i, j int) float64 { return m[i][j] }
