package services

import (
	"context"
	"time"

	"route-optimizer-service/internal/domain"
)

// Acceptance epsilon: a move must beat the current cost by more than this
// to count as an improvement, keeping float noise from looping forever.
const improveEps = 1e-9

// TwoOptImprover is the default local-search phase: deterministic
// first-improvement 2-opt over an open path, with a bounded number of
// double-bridge perturbations to escape local optima while wall-clock
// budget remains.
type TwoOptImprover struct {
	// MaxRestarts bounds perturbation attempts after local optima.
	MaxRestarts int
}

func NewTwoOptImprover() *TwoOptImprover {
	return &TwoOptImprover{MaxRestarts: 6}
}

// Improve refines order until no improving move exists, the deadline
// passes, or ctx is cancelled. The first element of order is the fixed
// start and never moves. The returned count is the number of accepted
// moves plus perturbations.
func (t *TwoOptImprover) Improve(ctx context.Context, costs [][]float64, order []int, deadline time.Time) ([]int, int, error) {
	if len(order) < 2 {
		return nil, 0, domain.ErrNoSolutionFound
	}

	cur := make([]int, len(order))
	copy(cur, order)

	iterations := 0
	curCost := t.descend(ctx, costs, cur, deadline, &iterations)

	best := make([]int, len(cur))
	copy(best, cur)
	bestCost := curCost

	// Perturb-and-reoptimize while budget remains. Cut points derive from
	// the restart counter, so runs stay reproducible.
	for restart := 0; restart < t.MaxRestarts; restart++ {
		if len(cur) < 5 || expired(ctx, deadline) {
			break
		}

		cur = doubleBridge(best, restart)
		iterations++

		curCost = t.descend(ctx, costs, cur, deadline, &iterations)
		if curCost < bestCost-improveEps {
			copy(best, cur)
			bestCost = curCost
		}
	}

	return best, iterations, nil
}

// descend runs first-improvement 2-opt to a local optimum (or deadline),
// mutating order in place, and returns the resulting path cost.
//
// Reversing order[i..k] replaces edges (i-1,i) and (k,k+1); costs are
// symmetric, so interior edges are unchanged. When k is the last position
// only the leading edge changes.
func (t *TwoOptImprover) descend(ctx context.Context, costs [][]float64, order []int, deadline time.Time, iterations *int) float64 {
	n := len(order)
	step := 0

	improved := true
	for improved {
		improved = false

	scan:
		for i := 1; i < n-1; i++ {
			for k := i + 1; k < n; k++ {
				// Deadline checked sparsely to keep the hot loop cheap.
				step++
				if step&63 == 0 && expired(ctx, deadline) {
					return pathCost(costs, order)
				}

				a, b := order[i-1], order[i]
				c := order[k]

				delta := costs[a][c] - costs[a][b]
				if k+1 < n {
					e := order[k+1]
					delta += costs[b][e] - costs[c][e]
				}

				if delta < -improveEps {
					reverse(order, i, k)
					*iterations++
					improved = true
					break scan
				}
			}
		}
	}

	return pathCost(costs, order)
}

func reverse(order []int, i, k int) {
	for i < k {
		order[i], order[k] = order[k], order[i]
		i++
		k--
	}
}

// doubleBridge cuts the path into four segments and re-splices the middle
// two, the classic perturbation 2-opt cannot undo in one move. Position 0
// (the fixed start) is never displaced. Requires len(order) >= 5.
func doubleBridge(order []int, restart int) []int {
	n := len(order)

	p1 := 1 + restart%(n-3)
	p2 := p1 + 1 + restart%(n-p1-2)
	p3 := p2 + 1 + restart%(n-p2-1)

	out := make([]int, 0, n)
	out = append(out, order[:p1]...)
	out = append(out, order[p2:p3]...)
	out = append(out, order[p1:p2]...)
	out = append(out, order[p3:]...)
	return out
}

func expired(ctx context.Context, deadline time.Time) bool {
	return ctx.Err() != nil || time.Now().After(deadline)
}
