package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"route-optimizer-service/internal/api/handlers"
	"route-optimizer-service/internal/ports"
	"route-optimizer-service/internal/services"
)

// Options carried from the composition root into the router.
type Options struct {
	// Allowed CORS origins; empty allows the local dev frontends.
	CORSOrigins []string
	// Wall-clock cap for the solver improvement phase.
	TimeBudget time.Duration
}

// NewRouter wires HTTP handlers with their dependencies and returns the
// gin engine. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(geocoder ports.Geocoder, solver *services.Solver, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(opts.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = opts.CORSOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsConfig))

	geocodeHandler := &handlers.GeocodeHandler{Geocoder: geocoder}
	optimizeHandler := &handlers.OptimizeHandler{
		Geocoder:   geocoder,
		Solver:     solver,
		TimeBudget: opts.TimeBudget,
	}

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.Health)
	r.GET("/optimization-strategies", handlers.Strategies)
	r.GET("/vehicle-types", handlers.VehicleTypes)
	r.POST("/geocode", geocodeHandler.Geocode)
	r.POST("/optimize", optimizeHandler.Optimize)
	r.POST("/optimize-route", optimizeHandler.OptimizeRoute)

	return r
}
