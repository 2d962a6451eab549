package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adreach/config"
	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/service"
	"adreach/internal/errors"

	"github.com/shopspring/decimal"
)

// targetingRules holds the creation limits taken from configuration.
type targetingRules struct {
	defaultRadiusKm float64
	maxRadiusKm     float64
	minAge          int
	maxAge          int
	minBudget       decimal.Decimal
	defaultCountry  string
}

func newTargetingRules(cfg config.CampaignConfig) targetingRules {
	return targetingRules{
		defaultRadiusKm: cfg.DefaultRadiusKm,
		maxRadiusKm:     cfg.MaxRadiusKm,
		minAge:          cfg.MinAge,
		maxAge:          cfg.MaxAge,
		minBudget:       cfg.MinBudgetAmount(),
		defaultCountry:  cfg.DefaultCountry,
	}
}

func (r targetingRules) validateRadius(radiusKm float64) error {
	if radiusKm <= 0 || radiusKm > r.maxRadiusKm {
		return domainerrors.ErrInvalidTargeting.WithDetails(
			fmt.Sprintf("radius must be in (0, %g] km", r.maxRadiusKm))
	}

	return nil
}

func (r targetingRules) validateAges(minAge, maxAge *int) error {
	for _, age := range []*int{minAge, maxAge} {
		if age != nil && (*age < r.minAge || *age > r.maxAge) {
			return domainerrors.ErrInvalidTargeting.WithDetails(
				fmt.Sprintf("ages must be between %d and %d", r.minAge, r.maxAge))
		}
	}
	if minAge != nil && maxAge != nil && *minAge > *maxAge {
		return domainerrors.ErrInvalidTargeting.WithDetails("minimum age exceeds maximum age")
	}

	return nil
}

func (r targetingRules) validateBudget(budget decimal.Decimal) error {
	if budget.LessThan(r.minBudget) {
		return domainerrors.ErrBudgetTooLow.WithDetails("minimum budget is " + r.minBudget.StringFixed(2))
	}

	return nil
}

func validateDates(start, end time.Time) error {
	if !start.Before(end) {
		return domainerrors.ErrInvalidDateRange
	}

	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	return nil
}

// explicitPoint returns the caller-supplied coordinates. Supplying only one of them is an error.
func explicitPoint(latitude, longitude *float64) (*entity.GeoPoint, error) {
	if latitude == nil && longitude == nil {
		return nil, nil
	}
	if latitude == nil || longitude == nil {
		return nil, domainerrors.ErrInvalidTargeting.WithDetails("latitude and longitude must be given together")
	}
	if *latitude < -90 || *latitude > 90 || *longitude < -180 || *longitude > 180 {
		return nil, domainerrors.ErrInvalidTargeting.WithDetails("coordinates out of range")
	}

	return &entity.GeoPoint{Lat: *latitude, Lon: *longitude}, nil
}

// resolveTarget prefers explicit coordinates and geocodes the targeted location otherwise.
func resolveTarget(
	ctx context.Context,
	geocoder service.Geocoder,
	rules targetingRules,
	location entity.TargetedLocation,
	latitude, longitude *float64,
) (entity.GeoPoint, error) {
	point, err := explicitPoint(latitude, longitude)
	if err != nil {
		return entity.GeoPoint{}, err
	}
	if point != nil {
		return *point, nil
	}

	address := location.AddressString(rules.defaultCountry)
	found, err := geocoder.Geocode(ctx, address)
	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, service.ErrGeocodeNoResult):
		return entity.GeoPoint{}, domainerrors.ErrGeocodeNoResult.WithDetails(address)
	default:
		return entity.GeoPoint{}, domainerrors.ErrGeocodingUnavailable.WrapMessage(err.Error())
	}
}
