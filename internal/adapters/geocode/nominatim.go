package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"route-optimizer-service/internal/domain"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder resolves addresses via the public Nominatim search
// API. Requests are rate-limited to one per second per the Nominatim usage
// policy, and transient failures are retried with backoff.
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *time.Ticker
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func NewNominatimGeocoder(baseURL string, timeout time.Duration) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: "route-optimizer-service/1.0",
		client:    &http.Client{Timeout: timeout},
		limiter:   time.NewTicker(time.Second),
	}
}

// Resolve an address to geographic coordinates.
func (g *NominatimGeocoder) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	if g.limiter != nil {
		select {
		case <-g.limiter.C:
		case <-ctx.Done():
			return domain.Coordinates{}, ctx.Err()
		}
	}

	endpoint := g.baseURL + "/search?q=" + url.QueryEscape(address) + "&format=json&limit=1"

	resp, err := doWithRetry(ctx, g.client, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", g.userAgent)
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, &domain.GeocodingError{Address: address, Reason: err.Error()}
	}
	defer resp.Body.Close()

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, &domain.GeocodingError{Address: address, Reason: "decode response: " + err.Error()}
	}

	if len(results) == 0 {
		return domain.Coordinates{}, &domain.GeocodingError{Address: address, Reason: "no results"}
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lngErr != nil {
		return domain.Coordinates{}, &domain.GeocodingError{Address: address, Reason: "invalid coordinate format"}
	}

	return domain.Coordinates{Lat: lat, Lng: lng}, nil
}
