package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a user's device registered for push notifications.
type UserDevice struct {
	ID           uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the device.
	UserID       uuid.UUID `json:"user_id"`        // The ID of the user who owns this device.
	FCMToken     string    `json:"fcm_token"`      // Firebase Cloud Messaging token for push notifications.
	Platform     string    `json:"platform"`       // Device platform (ios, android, web).
	IsActive     bool      `json:"is_active"`      // Inactive devices no longer receive pushes.
	LastActiveAt time.Time `json:"last_active_at"` // Last time the client refreshed its token.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
