package dto

import "route-optimizer-service/internal/domain"

// Bare coordinate pair used by the simple /optimize endpoint.
type CoordinateInput struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OptimizeRequest struct {
	Coordinates []CoordinateInput `json:"coordinates"`
	RoundTrip   bool              `json:"round_trip"`
}

type OptimizeResponse struct {
	Route         []int   `json:"route"`
	TotalDistance float64 `json:"total_distance"`
}

// One location of a full /optimize-route request. Either coordinates or an
// address is required; the remaining fields are optional attributes.
type LocationInput struct {
	Address            string           `json:"address,omitempty"`
	Lat                *float64         `json:"lat,omitempty"`
	Lng                *float64         `json:"lng,omitempty"`
	Category           string           `json:"category,omitempty"`
	Priority           int              `json:"priority,omitempty"`
	TimeWindow         *TimeWindowInput `json:"time_window,omitempty"`
	ServiceTimeSeconds float64          `json:"service_time_seconds,omitempty"`
}

type TimeWindowInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type RouteRequest struct {
	Locations         []LocationInput `json:"locations"`
	Strategy          string          `json:"strategy,omitempty"`
	Vehicle           string          `json:"vehicle,omitempty"`
	StartIndex        int             `json:"start_index,omitempty"`
	RoundTrip         bool            `json:"round_trip,omitempty"`
	TimeBudgetSeconds float64         `json:"time_budget_seconds,omitempty"`
}

type LocationResponse struct {
	ID                 string           `json:"id"`
	Address            string           `json:"address"`
	Lat                float64          `json:"lat"`
	Lng                float64          `json:"lng"`
	Category           string           `json:"category,omitempty"`
	Priority           int              `json:"priority"`
	TimeWindow         *TimeWindowInput `json:"time_window,omitempty"`
	ServiceTimeSeconds float64          `json:"service_time_seconds,omitempty"`
}

type SegmentResponse struct {
	FromID          string   `json:"from_id"`
	ToID            string   `json:"to_id"`
	DistanceMeters  float64  `json:"distance_meters"`
	DurationSeconds float64  `json:"duration_seconds"`
	Instructions    []string `json:"instructions"`
}

type StatsResponse struct {
	Strategy       string  `json:"strategy"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Iterations     int     `json:"iterations"`
	ImprovementPct float64 `json:"improvement_pct"`
}

type OptimizedRouteResponse struct {
	Locations     []LocationResponse `json:"locations"`
	TotalDistance float64            `json:"total_distance"`
	TotalTime     float64            `json:"total_time"`
	RouteOrder    []int              `json:"route_order"`
	Segments      []SegmentResponse  `json:"segments"`
	Stats         StatsResponse      `json:"stats"`
}

// Static metadata rows for the discovery endpoints.
type StrategyInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
}

type VehicleInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SpeedKmh    float64 `json:"speed_kmh"`
	Multiplier  float64 `json:"multiplier"`
}

// NewLocationResponse maps a resolved stop onto its wire form.
func NewLocationResponse(s domain.Stop) LocationResponse {
	out := LocationResponse{
		ID:                 s.ID,
		Address:            s.Address,
		Lat:                s.Coords.Lat,
		Lng:                s.Coords.Lng,
		Category:           s.Category,
		Priority:           s.Priority,
		ServiceTimeSeconds: s.ServiceTime.Seconds(),
	}
	if s.Window != nil {
		out.TimeWindow = &TimeWindowInput{Start: s.Window.Start, End: s.Window.End}
	}
	return out
}
