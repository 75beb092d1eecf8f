package domain

import (
	"errors"
	"fmt"
)

// ErrNoSolutionFound is returned when the solver cannot produce a feasible
// tour (degenerate matrix with unreachable entries). Distinct from input
// validation failures, which are reported as InvalidInputError.
var ErrNoSolutionFound = errors.New("no solution found for route optimization")

// Client-side input error. Index is the 1-based position of the offending
// location when the failure is location-specific, 0 otherwise.
type InvalidInputError struct {
	Index  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("invalid input: location %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// GeocodingError is returned when no provider resolved an address.
type GeocodingError struct {
	Address string
	Reason  string
}

func (e *GeocodingError) Error() string {
	return fmt.Sprintf("geocoding failed for %q: %s", e.Address, e.Reason)
}
