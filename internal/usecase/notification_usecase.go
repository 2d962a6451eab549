package usecase

import (
	"context"

	"adreach/internal/domain/entity"
	"adreach/internal/domain/service"

	"github.com/google/uuid"
)

// UpdateSettingsInput is a partial settings update; nil fields keep their value.
type UpdateSettingsInput struct {
	CampaignPerformanceUpdates *bool
	LiveCampaignUpdates        *bool
	LowBudgetAlert             *bool
	PaymentTransactionUpdates  *bool
	NewCommentNotification     *bool
	PushNotifications          *bool
}

// NotificationPage is a page of the inbox.
type NotificationPage struct {
	Notifications []*entity.Notification `json:"notifications"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalCount    int64                  `json:"total_count"`
}

// DeliveryResult reports what Deliver did with an event.
type DeliveryResult struct {
	Stored        bool
	Skipped       string
	PushSent      int
	PushFailed    int
	InvalidTokens int
}

// NotificationUsecase delivers notifications and manages the inbox and preferences.
type NotificationUsecase interface {
	// Deliver gates the event by the recipient's settings, stores it and pushes it to devices.
	Deliver(ctx context.Context, event *service.NotificationEvent) (*DeliveryResult, error)

	GetSettings(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, input UpdateSettingsInput) (*entity.NotificationSettings, error)
	List(ctx context.Context, userID uuid.UUID, page Page) (*NotificationPage, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}
