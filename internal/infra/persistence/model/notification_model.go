package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents one in-app inbox entry written by the notification worker.
type NotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_notification_user_time"`
	Type      string            `gorm:"type:varchar(50);not null"`
	Title     string            `gorm:"type:varchar(200);not null"`
	Message   string            `gorm:"type:text;not null"`
	Data      datatypes.JSONMap `gorm:"type:jsonb"`
	IsRead    bool              `gorm:"not null;default:false"`
	CreatedAt time.Time         `gorm:"index:idx_notification_user_time"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationSettingsModel is the GORM-specific struct for the 'notification_settings' table.
type NotificationSettingsModel struct {
	UserID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CampaignPerformanceUpdates bool      `gorm:"not null;default:true"`
	LiveCampaignUpdates        bool      `gorm:"not null;default:true"`
	LowBudgetAlert             bool      `gorm:"not null;default:true"`
	PaymentTransactionUpdates  bool      `gorm:"not null;default:true"`
	NewCommentNotification     bool      `gorm:"not null;default:true"`
	PushNotifications          bool      `gorm:"not null;default:true"`
	UpdatedAt                  time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationSettingsModel) TableName() string {
	return "notification_settings"
}
