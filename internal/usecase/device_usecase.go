package usecase

import (
	"context"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput is the FCM registration a client sends after obtaining a token.
type RegisterDeviceInput struct {
	FCMToken string `json:"fcm_token"`
	// Platform is one of ios, android or web.
	Platform string `json:"platform"`
}

// DeviceUsecase manages the push targets of a user.
type DeviceUsecase interface {
	// RegisterDevice upserts by token. A token seen under another user moves to userID.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.UserDevice, error)

	// GetUserDevices lists the active devices of userID.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice stops pushes to a device owned by userID.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
