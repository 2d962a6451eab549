package service

import (
	"context"
	"time"

	"adreach/internal/domain/entity"
)

// NotificationEvent is the message handed to the notification worker.
type NotificationEvent struct {
	RequestID  string                  `json:"request_id,omitempty"` // For distributed tracing
	UserID     string                  `json:"user_id"`
	Type       entity.NotificationType `json:"type"`
	Title      string                  `json:"title"`
	Message    string                  `json:"message"`
	Data       map[string]any          `json:"data,omitempty"`
	OccurredAt time.Time               `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
