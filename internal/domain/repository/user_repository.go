// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository reads users and writes the few fields the platform owns.
// Registration and profile data live with the identity service.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateLocation stores the user's last reported coordinates.
	UpdateLocation(ctx context.Context, id uuid.UUID, latitude, longitude float64) error

	// SetActiveStatus bans or reinstates a user.
	SetActiveStatus(ctx context.Context, id uuid.UUID, status entity.ActiveStatus) error

	// Count counts users with role, optionally restricted to status.
	Count(ctx context.Context, role entity.Role, status *entity.ActiveStatus) (int64, error)
}
