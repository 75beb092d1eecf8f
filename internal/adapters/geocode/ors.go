package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"route-optimizer-service/internal/domain"
)

const defaultORSBaseURL = "https://api.openrouteservice.org"

// ORSGeocoder resolves addresses via the OpenRouteService geocode search
// endpoint. Used as the secondary provider when an API key is configured.
type ORSGeocoder struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type orsGeocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func NewORSGeocoder(apiKey string, timeout time.Duration) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ORSGeocoder{
		apiKey:  apiKey,
		baseURL: defaultORSBaseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Resolve an address to geographic coordinates.
func (g *ORSGeocoder) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	endpoint := g.baseURL + "/geocode/search"

	resp, err := doWithRetry(ctx, g.client, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", g.apiKey)
		req.Header.Set("Accept", "application/json")

		q := req.URL.Query()
		q.Set("text", address)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, &domain.GeocodingError{Address: address, Reason: err.Error()}
	}
	defer resp.Body.Close()

	var decoded orsGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, &domain.GeocodingError{Address: address, Reason: "decode response: " + err.Error()}
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, &domain.GeocodingError{Address: address, Reason: "no results"}
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, &domain.GeocodingError{Address: address, Reason: "invalid coordinate format"}
	}

	// ORS returns GeoJSON [lon, lat] order.
	return domain.Coordinates{Lat: coords[1], Lng: coords[0]}, nil
}
