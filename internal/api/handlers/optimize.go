package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/ports"
	"route-optimizer-service/internal/services"
)

type OptimizeHandler struct {
	Geocoder   ports.Geocoder
	Solver     *services.Solver
	TimeBudget time.Duration
}

// Optimize handles the simple coordinate-only endpoint: car profile,
// distance strategy, start at index 0.
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	var req dto.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid json body"))
		return
	}

	if len(req.Coordinates) < 2 {
		c.JSON(http.StatusBadRequest, dto.Fail("at least 2 coordinates are required"))
		return
	}

	stops := make([]services.StopRequest, 0, len(req.Coordinates))
	for _, co := range req.Coordinates {
		lat, lng := co.Lat, co.Lng
		stops = append(stops, services.StopRequest{Lat: &lat, Lng: &lng})
	}

	result, err := services.OptimizeStops(c.Request.Context(), services.OptimizeRequest{
		Stops:      stops,
		Strategy:   domain.StrategyDistance,
		Vehicle:    domain.VehicleCar,
		RoundTrip:  req.RoundTrip,
		TimeBudget: h.TimeBudget,
	}, h.Geocoder, h.Solver)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.OptimizeResponse{
		Route:         result.Route.Order,
		TotalDistance: result.TotalDistanceMeters,
	}))
}

// OptimizeRoute handles the full endpoint: mixed address/coordinate
// locations, strategy and vehicle selection, fixed start, optional closed
// tour.
func (h *OptimizeHandler) OptimizeRoute(c *gin.Context) {
	var req dto.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid json body"))
		return
	}

	stops := make([]services.StopRequest, 0, len(req.Locations))
	for _, l := range req.Locations {
		var window *domain.TimeWindow
		if l.TimeWindow != nil {
			window = &domain.TimeWindow{Start: l.TimeWindow.Start, End: l.TimeWindow.End}
		}

		stops = append(stops, services.StopRequest{
			Address:     l.Address,
			Lat:         l.Lat,
			Lng:         l.Lng,
			Category:    l.Category,
			Priority:    l.Priority,
			Window:      window,
			ServiceTime: time.Duration(l.ServiceTimeSeconds * float64(time.Second)),
		})
	}

	budget := h.TimeBudget
	if req.TimeBudgetSeconds > 0 {
		budget = time.Duration(req.TimeBudgetSeconds * float64(time.Second))
	}

	result, err := services.OptimizeStops(c.Request.Context(), services.OptimizeRequest{
		Stops:      stops,
		Strategy:   domain.Strategy(req.Strategy),
		Vehicle:    domain.VehicleKind(req.Vehicle),
		StartIndex: req.StartIndex,
		RoundTrip:  req.RoundTrip,
		TimeBudget: budget,
	}, h.Geocoder, h.Solver)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	locations := make([]dto.LocationResponse, 0, len(result.Stops))
	for _, s := range result.Stops {
		locations = append(locations, dto.NewLocationResponse(s))
	}

	segments := make([]dto.SegmentResponse, 0, len(result.Segments))
	for _, seg := range result.Segments {
		segments = append(segments, dto.SegmentResponse{
			FromID:          seg.From.ID,
			ToID:            seg.To.ID,
			DistanceMeters:  seg.DistanceMeters,
			DurationSeconds: seg.DurationSeconds,
			Instructions:    seg.Instructions,
		})
	}

	c.JSON(http.StatusOK, dto.OK(dto.OptimizedRouteResponse{
		Locations:     locations,
		TotalDistance: result.TotalDistanceMeters,
		TotalTime:     result.TotalTimeSeconds,
		RouteOrder:    result.Route.Order,
		Segments:      segments,
		Stats: dto.StatsResponse{
			Strategy:       string(result.Stats.Strategy),
			ElapsedSeconds: result.Stats.ElapsedSeconds,
			Iterations:     result.Stats.Iterations,
			ImprovementPct: result.Stats.ImprovementPct,
		},
	}))
}
