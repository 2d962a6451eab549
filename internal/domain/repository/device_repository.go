// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice stores the device keyed by its FCM token. A token already known is moved
	// to device.UserID and reactivated. The stored row is returned.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error)

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice marks a device inactive.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error

	// DeactivateTokens marks every device holding one of tokens inactive.
	DeactivateTokens(ctx context.Context, tokens []string) error
}
