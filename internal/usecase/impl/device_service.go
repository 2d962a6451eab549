package impl

import (
	"context"
	"strings"
	"time"

	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	"adreach/internal/errors"
	"adreach/internal/usecase"

	"github.com/google/uuid"
)

var validPlatforms = map[string]struct{}{
	"ios":     {},
	"android": {},
	"web":     {},
}

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers the token for the user. A token already known, even for
// another user, is moved to this user and reactivated.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	token := strings.TrimSpace(input.FCMToken)
	if token == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}
	platform := strings.ToLower(strings.TrimSpace(input.Platform))
	if _, ok := validPlatforms[platform]; !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be ios, android or web")
	}

	now := time.Now()
	device := &entity.UserDevice{
		ID:           uuid.New(),
		UserID:       userID,
		FCMToken:     token,
		Platform:     platform,
		IsActive:     true,
		LastActiveAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	stored, err := s.deviceRepo.UpsertDevice(ctx, device)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	return stored, nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	// Fetch device to verify ownership
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to find device by ID")
	}

	// Verify ownership
	if device.UserID != userID {
		return domainerrors.ErrForbidden.WithDetails("device belongs to another user")
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}
