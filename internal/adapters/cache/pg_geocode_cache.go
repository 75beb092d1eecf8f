package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"route-optimizer-service/internal/domain"
)

// PGGeocodeCache is a Postgres-backed geocode cache for deployments that
// want resolved addresses to survive restarts.
type PGGeocodeCache struct {
	DB *sql.DB
}

func NewPGGeocodeCache(db *sql.DB) *PGGeocodeCache {
	return &PGGeocodeCache{DB: db}
}

// InitSchema creates the cache table when it does not exist yet.
func (c *PGGeocodeCache) InitSchema(ctx context.Context) error {
	if c.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	_, err := c.DB.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lat     DOUBLE PRECISION NOT NULL,
		lng     DOUBLE PRECISION NOT NULL
	);
	`)
	if err != nil {
		return fmt.Errorf("init geocode cache: create table: %w", err)
	}

	return nil
}

// Fetch cached coordinates for the given address key.
func (c *PGGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	if c.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	var lat, lng float64
	err := c.DB.QueryRowContext(ctx, `
	SELECT lat, lng
	FROM geocode_cache
	WHERE address = $1;
	`, address).Scan(&lat, &lng)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lat: lat, Lng: lng}, true, nil
}

// Store an address -> coordinate mapping in the cache.
func (c *PGGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) error {
	if c.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	if strings.TrimSpace(address) == "" {
		return errors.New("insert geocode cache: empty address key")
	}

	_, err := c.DB.ExecContext(ctx, `
	INSERT INTO geocode_cache (address, lat, lng)
	VALUES ($1, $2, $3)
	ON CONFLICT (address) DO UPDATE
	SET lat = EXCLUDED.lat,
		lng = EXCLUDED.lng;
	`, address, coords.Lat, coords.Lng)
	if err != nil {
		return fmt.Errorf("insert geocode cache coord=%q: %w", address, err)
	}

	return nil
}
