package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/domain"
)

// Strategies lists the supported optimization strategies.
func Strategies(c *gin.Context) {
	out := make([]dto.StrategyInfo, 0, 3)
	for _, s := range domain.Strategies() {
		weight, _ := s.Weight()
		out = append(out, dto.StrategyInfo{
			Name:        string(s),
			Description: s.Description(),
			Weight:      weight,
		})
	}
	c.JSON(http.StatusOK, dto.OK(out))
}

// VehicleTypes lists the supported vehicle profiles.
func VehicleTypes(c *gin.Context) {
	out := make([]dto.VehicleInfo, 0, 4)
	for _, p := range domain.VehicleKinds() {
		out = append(out, dto.VehicleInfo{
			Name:        string(p.Kind),
			Description: p.Description,
			SpeedKmh:    p.SpeedKmh,
			Multiplier:  p.Multiplier,
		})
	}
	c.JSON(http.StatusOK, dto.OK(out))
}
