package services

import (
	"context"
	"time"

	"route-optimizer-service/internal/domain"
)

// SolveWithStats wraps a solve with wall-clock timing and derives the
// improvement percentage against the naive identity-order baseline
// computed over the same effective weighting.
func SolveWithStats(ctx context.Context, solver *Solver, matrix domain.CostMatrix, opts SolveOptions) (domain.Route, domain.SolveStats, error) {
	strategy := opts.Strategy
	if strategy == "" {
		strategy = domain.StrategyDistance
	}

	start := time.Now()
	route, iterations, err := solver.Solve(ctx, matrix, opts)
	if err != nil {
		return domain.Route{}, domain.SolveStats{}, err
	}
	elapsed := time.Since(start).Seconds()

	weight, err := strategy.Weight()
	if err != nil {
		return domain.Route{}, domain.SolveStats{}, err
	}

	improvement := 0.0
	if naive := NaiveBaselineCost(matrix, weight); naive > 0 {
		improvement = (naive - route.TotalCost) / naive * 100
	}
	if improvement < 0 {
		improvement = 0
	}
	if improvement > 100 {
		improvement = 100
	}

	return route, domain.SolveStats{
		Strategy:       strategy,
		ElapsedSeconds: elapsed,
		Iterations:     iterations,
		ImprovementPct: improvement,
	}, nil
}
