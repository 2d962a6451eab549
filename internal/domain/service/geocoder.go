package service

import (
	"context"
	"errors"

	"adreach/internal/domain/entity"
)

var (
	// ErrGeocodeNoResult is returned when the address matched nothing.
	ErrGeocodeNoResult = errors.New("geocoder returned no result")
	// ErrGeocoderUnavailable is returned when the geocoding provider could not be reached.
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")
)

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (entity.GeoPoint, error)
}
