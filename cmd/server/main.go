package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"route-optimizer-service/internal/adapters/cache"
	"route-optimizer-service/internal/adapters/geocode"
	"route-optimizer-service/internal/api"
	"route-optimizer-service/internal/platform/db"
	"route-optimizer-service/internal/ports"
	"route-optimizer-service/internal/services"
)

// main is the application composition root.
// It wires the geocoding chain and its cache backend behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8000")
	nominatimURL := getEnv("NOMINATIM_URL", "")
	geocodeTimeout := time.Duration(getEnvInt("GEOCODE_TIMEOUT_SECONDS", 10)) * time.Second
	timeBudget := time.Duration(getEnvInt("SOLVER_TIME_BUDGET_SECONDS", 30)) * time.Second

	geocodeCache := buildGeocodeCache()

	providers := []ports.Geocoder{geocode.NewNominatimGeocoder(nominatimURL, geocodeTimeout)}
	if key := os.Getenv("ORS_API_KEY"); strings.TrimSpace(key) != "" {
		ors, err := geocode.NewORSGeocoder(key, geocodeTimeout)
		if err != nil {
			log.Fatal(err)
		}
		providers = append(providers, ors)
		log.Println("ORS geocoding fallback enabled")
	}

	geocoder := geocode.NewCachedGeocoder(geocode.NewFallbackGeocoder(providers...), geocodeCache)
	solver := services.NewSolver()

	router := api.NewRouter(geocoder, solver, api.Options{
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),
		TimeBudget:  timeBudget,
	})

	// Write timeout leaves headroom above the solver budget so a solve at
	// the cap still gets its response out.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      timeBudget + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildGeocodeCache picks the cache backend from the environment:
// Redis when REDIS_ADDR is set, Postgres when DATABASE_URL is set,
// otherwise a process-lifetime in-memory map.
func buildGeocodeCache() ports.GeocodeCache {
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("verify redis connection to %q: %v", addr, err)
		}
		log.Printf("Geocode cache backend=redis addr=%s", addr)
		return cache.NewRedisGeocodeCache(client, 0)
	}

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pool, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		pgCache := cache.NewPGGeocodeCache(pool)
		if err := pgCache.InitSchema(context.Background()); err != nil {
			log.Fatal(err)
		}
		log.Println("Geocode cache backend=postgres")
		return pgCache
	}

	log.Println("Geocode cache backend=memory")
	return cache.NewMemoryGeocodeCache()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, v)
	}
	return n
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
