package service

import "adreach/internal/domain/entity"

// IPLocator maps a client IP to a coarse location.
type IPLocator interface {
	// Locate returns nil without error when the address is unknown.
	Locate(ip string) (*entity.EventLocation, error)
}
