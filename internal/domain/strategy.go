package domain

import "fmt"

// Optimization strategy selecting the effective edge-cost weighting.
type Strategy string

const (
	StrategyDistance Strategy = "distance"
	StrategyTime     Strategy = "time"
	StrategyBalanced Strategy = "balanced"
)

// Uniform per-edge weight applied on top of raw matrix costs. Time and
// balanced approximate faster-edge preference when true travel-time data
// is unavailable.
var strategyWeights = map[Strategy]float64{
	StrategyDistance: 1.0,
	StrategyTime:     1.2,
	StrategyBalanced: 1.1,
}

var strategyDescriptions = map[Strategy]string{
	StrategyDistance: "Minimize total travel distance",
	StrategyTime:     "Minimize estimated travel time",
	StrategyBalanced: "Balance distance and travel time",
}

// Weight returns the effective-cost multiplier for the strategy.
// An empty strategy defaults to distance.
func (s Strategy) Weight() (float64, error) {
	if s == "" {
		s = StrategyDistance
	}
	w, ok := strategyWeights[s]
	if !ok {
		return 0, fmt.Errorf("unknown optimization strategy %q", s)
	}
	return w, nil
}

// Description returns the human-readable summary for a known strategy.
func (s Strategy) Description() string { return strategyDescriptions[s] }

// Strategies lists all known strategies in a stable order.
func Strategies() []Strategy {
	return []Strategy{StrategyDistance, StrategyTime, StrategyBalanced}
}
