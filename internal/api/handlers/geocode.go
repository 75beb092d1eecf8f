package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/ports"
)

type GeocodeHandler struct {
	Geocoder ports.Geocoder
}

// Geocode resolves a single free-text address. Resolution failures are
// reported in-band as a success=false envelope, not as an HTTP error.
func (h *GeocodeHandler) Geocode(c *gin.Context) {
	var req dto.GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid json body"))
		return
	}

	if strings.TrimSpace(req.Address) == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("address is required"))
		return
	}

	coords, err := h.Geocoder.Resolve(c.Request.Context(), req.Address)
	if err != nil {
		c.JSON(http.StatusOK, dto.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.GeocodeResponse{Lat: coords.Lat, Lng: coords.Lng}))
}
