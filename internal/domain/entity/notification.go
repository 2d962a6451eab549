package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the category of a vendor or user notification.
type NotificationType string

const (
	NotificationCampaignPerformance NotificationType = "CAMPAIGN_PERFORMANCE"
	NotificationLowBudgetAlert      NotificationType = "LOW_BUDGET_ALERT"
	NotificationPaymentSuccess      NotificationType = "PAYMENT_SUCCESS"
	NotificationPaymentFailed       NotificationType = "PAYMENT_FAILED"
	NotificationCampaignStarted     NotificationType = "CAMPAIGN_STARTED"
	NotificationCampaignCompleted   NotificationType = "CAMPAIGN_COMPLETED"
	NotificationCampaignEndingSoon  NotificationType = "CAMPAIGN_ENDING_SOON"
	NotificationNewComment          NotificationType = "NEW_COMMENT"
	NotificationNewConversion       NotificationType = "NEW_CONVERSION"
)

// NotificationMessage is what a triggering operation asks to deliver.
type NotificationMessage struct {
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Data    map[string]any   `json:"data,omitempty"`
}

// Notification is a persisted in-app inbox entry.
type Notification struct {
	ID        uuid.UUID        `json:"id"`         // The notification id.
	UserID    uuid.UUID        `json:"user_id"`    // The recipient.
	Type      NotificationType `json:"type"`       // The category used for preference gating.
	Title     string           `json:"title"`      // Short headline.
	Message   string           `json:"message"`    // Body text.
	Data      map[string]any   `json:"data"`       // Extra payload, e.g. campaign_id.
	IsRead    bool             `json:"is_read"`    // Set once the user opened it.
	CreatedAt time.Time        `json:"created_at"` // Timestamp of when it was stored.
}

// NotificationSettings are the per-user delivery preferences.
type NotificationSettings struct {
	UserID                     uuid.UUID `json:"user_id"`
	CampaignPerformanceUpdates bool      `json:"campaign_performance_updates"`
	LiveCampaignUpdates        bool      `json:"live_campaign_updates"`
	LowBudgetAlert             bool      `json:"low_budget_alert"`
	PaymentTransactionUpdates  bool      `json:"payment_transaction_updates"`
	NewCommentNotification     bool      `json:"new_comment_notification"`
	PushNotifications          bool      `json:"push_notifications"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

// DefaultNotificationSettings returns the settings a user gets before changing anything.
func DefaultNotificationSettings(userID uuid.UUID) *NotificationSettings {
	return &NotificationSettings{
		UserID:                     userID,
		CampaignPerformanceUpdates: true,
		LiveCampaignUpdates:        true,
		LowBudgetAlert:             true,
		PaymentTransactionUpdates:  true,
		NewCommentNotification:     true,
		PushNotifications:          true,
	}
}

// Allows reports whether a notification of type t may be delivered.
// Types without a matching preference are always delivered.
func (s *NotificationSettings) Allows(t NotificationType) bool {
	switch t {
	case NotificationCampaignPerformance:
		return s.CampaignPerformanceUpdates
	case NotificationLowBudgetAlert:
		return s.LowBudgetAlert
	case NotificationPaymentSuccess, NotificationPaymentFailed:
		return s.PaymentTransactionUpdates
	case NotificationCampaignStarted, NotificationCampaignCompleted,
		NotificationNewComment, NotificationCampaignEndingSoon:
		return s.LiveCampaignUpdates
	default:
		return true
	}
}
