package domain

// Statistics describing one solver invocation.
// ImprovementPct compares the solved cost against the naive sequential
// baseline over the same effective weighting, clamped to [0, 100].
type SolveStats struct {
	Strategy       Strategy
	ElapsedSeconds float64
	Iterations     int
	ImprovementPct float64
}
