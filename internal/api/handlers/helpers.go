package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/domain"
)

// writeServiceError converts an engine error into the response envelope.
// Input and geocoding failures are client errors; an infeasible solve is a
// server-side failure distinct from validation.
func writeServiceError(c *gin.Context, err error) {
	var invalid *domain.InvalidInputError
	var geo *domain.GeocodingError

	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.As(err, &geo):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrNoSolutionFound):
		log.Printf("solver found no feasible tour: %v", err)
		c.JSON(http.StatusInternalServerError, dto.Fail("route optimization failed: no solution found"))
	default:
		log.Printf("optimization failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.Fail("internal server error"))
	}
}
