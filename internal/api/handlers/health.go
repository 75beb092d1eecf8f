package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"route-optimizer-service/internal/api/dto"
)

// Root returns the service banner.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Route Optimizer API is running"})
}

// Health provides a minimal liveness check endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK(gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	}))
}
