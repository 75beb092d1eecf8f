package domain

// Represents one edge of a solved route: travel from one stop to the next,
// with raw distance, estimated duration, and templated instruction lines.
// Segments derive from a Route and never mutate it.
type Segment struct {
	From            Stop
	To              Stop
	DistanceMeters  float64
	DurationSeconds float64
	Instructions    []string
}
