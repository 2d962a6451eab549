// Package geocoding resolves campaign addresses through a Nominatim compatible API.
package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"adreach/config"
	"adreach/internal/domain/entity"
	"adreach/internal/domain/service"

	"github.com/pkg/errors"
)

// nominatimGeocoder implements service.Geocoder.
type nominatimGeocoder struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimGeocoder creates a geocoder for cfg.Endpoint.
func NewNominatimGeocoder(cfg *config.Config) service.Geocoder {
	return &nominatimGeocoder{
		endpoint:  cfg.Geocoding.Endpoint,
		userAgent: cfg.Geocoding.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Geocoding.Timeout,
		},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns the best match for address. Transport failures and non 2xx replies
// wrap service.ErrGeocoderUnavailable; an empty result is service.ErrGeocodeNoResult.
func (g *nominatimGeocoder) Geocode(ctx context.Context, address string) (entity.GeoPoint, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return entity.GeoPoint{}, errors.WithStack(err)
	}
	// Nominatim's usage policy rejects requests without an identifying agent.
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrapf(service.ErrGeocoderUnavailable, "request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return entity.GeoPoint{}, errors.Wrapf(service.ErrGeocoderUnavailable, "status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return entity.GeoPoint{}, errors.Wrapf(service.ErrGeocoderUnavailable, "decode response: %v", err)
	}
	if len(results) == 0 {
		return entity.GeoPoint{}, service.ErrGeocodeNoResult
	}

	return parsePoint(results[0])
}

func parsePoint(r searchResult) (entity.GeoPoint, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrapf(service.ErrGeocoderUnavailable, "bad latitude %q", r.Lat)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrapf(service.ErrGeocoderUnavailable, "bad longitude %q", r.Lon)
	}

	return entity.GeoPoint{Lat: lat, Lon: lon}, nil
}
