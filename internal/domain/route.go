package domain

// Represents a solved visiting order over the stops of one request.
// Order holds stop indices; each index appears exactly once, except that a
// closed route repeats the start index at the end. TotalCost is the
// strategy-weighted (effective) cost the solver minimized, not the raw
// reporting distance.
type Route struct {
	Order     []int
	TotalCost float64
	Closed    bool
}

// Visits returns the order without the duplicated closing index.
func (r Route) Visits() []int {
	if r.Closed && len(r.Order) > 1 {
		return r.Order[:len(r.Order)-1]
	}
	return r.Order
}
