package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// A push token belongs to exactly one device row; re-registering moves it to the new user.
type UserDeviceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken     string    `gorm:"column:fcm_token;type:varchar(255);not null;uniqueIndex"`
	Platform     string    `gorm:"type:varchar(50);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	LastActiveAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
