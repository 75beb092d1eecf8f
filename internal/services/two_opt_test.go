package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Grid of squared euclidean-ish costs for a tiny synthetic instance where
// the identity path 0-1-2-3 crosses itself.
func crossedCosts() [][]float64 {
	// Points on a plane: 0=(0,0) 1=(1,1) 2=(1,0) 3=(0,1).
	// Identity order crosses twice; optimal open path from 0 is 0-2-1-3.
	pts := [][2]float64{{0, 0}, {1, 1}, {1, 0}, {0, 1}}
	n := len(pts)
	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, n)
		for j := range costs[i] {
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			costs[i][j] = dx*dx + dy*dy
		}
	}
	return costs
}

func TestTwoOptUncrossesPath(t *testing.T) {
	costs := crossedCosts()
	initial := []int{0, 1, 2, 3}
	initialCost := pathCost(costs, initial)

	improved, iterations, err := NewTwoOptImprover().Improve(
		context.Background(), costs, initial, time.Now().Add(time.Second))
	require.NoError(t, err)
	require.Greater(t, iterations, 0)
	require.Less(t, pathCost(costs, improved), initialCost)
	require.Equal(t, 0, improved[0])

	// Input order must stay untouched.
	require.Equal(t, []int{0, 1, 2, 3}, initial)
}

func TestTwoOptLeavesOptimalPathAlone(t *testing.T) {
	costs := crossedCosts()
	optimal := []int{0, 2, 1, 3}

	improved, _, err := NewTwoOptImprover().Improve(
		context.Background(), costs, optimal, time.Now().Add(time.Second))
	require.NoError(t, err)
	require.InEpsilon(t, pathCost(costs, optimal), pathCost(costs, improved), 1e-12)
}

func TestTwoOptStopsAtExpiredDeadline(t *testing.T) {
	costs := crossedCosts()
	initial := []int{0, 1, 2, 3}

	// An already-expired deadline still returns a valid order.
	improved, _, err := NewTwoOptImprover().Improve(
		context.Background(), costs, initial, time.Now().Add(-time.Second))
	require.NoError(t, err)
	require.Len(t, improved, 4)
	require.Equal(t, 0, improved[0])
}

func TestDoubleBridgeKeepsPermutation(t *testing.T) {
	order := []int{0, 1, 2, 3, 4, 5, 6, 7}

	for restart := 0; restart < 10; restart++ {
		got := doubleBridge(order, restart)
		require.Len(t, got, len(order))
		require.Equal(t, 0, got[0], "restart %d displaced the start", restart)

		seen := make(map[int]bool, len(got))
		for _, v := range got {
			require.False(t, seen[v], "restart %d duplicated %d", restart, v)
			seen[v] = true
		}
	}
}

func TestDoubleBridgeDeterministic(t *testing.T) {
	order := []int{0, 1, 2, 3, 4, 5, 6}
	require.Equal(t, doubleBridge(order, 2), doubleBridge(order, 2))
}
