package domain

import "time"

// Optional wall-clock visiting bounds for a stop.
type TimeWindow struct {
	Start string
	End   string
}

// Represents a single geographic stop to be visited.
// A Stop is immutable once constructed for a request: the optional
// attributes (category, priority, time window, service time) are carried
// through planning and echoed in responses, but are not yet solver
// constraints.
type Stop struct {
	ID          string
	Address     string
	Coords      Coordinates
	Category    string
	Priority    int
	Window      *TimeWindow
	ServiceTime time.Duration
}
