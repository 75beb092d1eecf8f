package services

import (
	"context"
	"math"
	"time"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/platform/obs"
)

// DefaultTimeBudget caps the improvement phase when the caller does not
// set one.
const DefaultTimeBudget = 30 * time.Second

// Options controlling a single solve.
type SolveOptions struct {
	Strategy   domain.Strategy
	StartIndex int
	RoundTrip  bool
	TimeBudget time.Duration
}

// Improver refines an initial visiting order under a wall-clock deadline.
//
// Implementations receive the effective (strategy-weighted) edge costs and
// an open path whose first element is the fixed start; they return the
// improved order, the number of improvement steps taken, and an error only
// on infeasibility. Returning at the deadline with the best order found so
// far is a valid terminal state.
type Improver interface {
	Improve(ctx context.Context, costs [][]float64, order []int, deadline time.Time) ([]int, int, error)
}

// Solver produces a visiting order over a cost matrix using a greedy
// construction heuristic followed by a pluggable local-search phase.
// A Solver carries no per-request state and is safe for concurrent use.
type Solver struct {
	Improver Improver
}

// NewSolver returns a Solver with the default 2-opt improvement phase.
func NewSolver() *Solver {
	return &Solver{Improver: NewTwoOptImprover()}
}

// Solve returns the optimized route and the improvement-step count.
//
// Both phases minimize the same strategy-weighted objective. Ties between
// candidate extensions or moves are broken toward the lowest stop index so
// repeated runs are reproducible.
func (s *Solver) Solve(ctx context.Context, matrix domain.CostMatrix, opts SolveOptions) (_ domain.Route, _ int, err error) {
	defer obs.Time(ctx, "solver.Solve")(&err)

	n := matrix.Dim()
	if n < 2 {
		return domain.Route{}, 0, &domain.InvalidInputError{Reason: "at least 2 locations are required"}
	}
	if opts.StartIndex < 0 || opts.StartIndex >= n {
		return domain.Route{}, 0, &domain.InvalidInputError{Reason: "start index out of range"}
	}

	weight, err := opts.Strategy.Weight()
	if err != nil {
		return domain.Route{}, 0, &domain.InvalidInputError{Reason: err.Error()}
	}

	costs := weightedCosts(matrix, weight)

	order, err := constructTour(costs, opts.StartIndex)
	if err != nil {
		return domain.Route{}, 0, err
	}

	budget := opts.TimeBudget
	if budget <= 0 {
		budget = DefaultTimeBudget
	}
	deadline := time.Now().Add(budget)

	improver := s.Improver
	if improver == nil {
		improver = NewTwoOptImprover()
	}

	order, iterations, err := improver.Improve(ctx, costs, order, deadline)
	if err != nil {
		return domain.Route{}, 0, err
	}

	total := pathCost(costs, order)
	if opts.RoundTrip {
		closing := costs[order[len(order)-1]][opts.StartIndex]
		if !isFinite(closing) {
			return domain.Route{}, 0, domain.ErrNoSolutionFound
		}
		total += closing
		order = append(order, opts.StartIndex)
	}

	if !isFinite(total) {
		return domain.Route{}, 0, domain.ErrNoSolutionFound
	}

	return domain.Route{Order: order, TotalCost: total, Closed: opts.RoundTrip}, iterations, nil
}

// constructTour builds the initial path by repeatedly extending with the
// cheapest remaining arc from the current endpoint (greedy step).
func constructTour(costs [][]float64, start int) ([]int, error) {
	n := len(costs)
	order := make([]int, 0, n)
	order = append(order, start)

	visited := make([]bool, n)
	visited[start] = true

	current := start
	for len(order) < n {
		best := -1
		bestCost := math.Inf(1)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			c := costs[current][j]
			// Lowest index wins on equal cost; candidates are scanned in
			// ascending index order, so a strict comparison suffices.
			if c < bestCost {
				bestCost = c
				best = j
			}
		}

		if best < 0 || !isFinite(bestCost) {
			return nil, domain.ErrNoSolutionFound
		}

		visited[best] = true
		order = append(order, best)
		current = best
	}

	return order, nil
}

// NaiveBaselineCost returns the effective cost of the identity-order cycle
// 0 -> 1 -> ... -> n-1 -> 0. Used as the improvement-percentage baseline.
func NaiveBaselineCost(matrix domain.CostMatrix, strategyWeight float64) float64 {
	n := matrix.Dim()
	if n < 2 {
		return 0
	}

	total := 0.0
	for i := 0; i < n-1; i++ {
		total += matrix.At(i, i+1)
	}
	total += matrix.At(n-1, 0)

	return total * strategyWeight
}

func weightedCosts(matrix domain.CostMatrix, weight float64) [][]float64 {
	n := matrix.Dim()
	costs := make([][]float64, n)
	for i := 0; i < n; i++ {
		costs[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			costs[i][j] = matrix.At(i, j) * weight
		}
	}
	return costs
}

func pathCost(costs [][]float64, order []int) float64 {
	total := 0.0
	for i := 0; i < len(order)-1; i++ {
		total += costs[order[i]][order[i+1]]
	}
	return total
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
