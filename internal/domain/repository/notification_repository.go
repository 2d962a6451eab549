// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrSettingsNotFound is returned when a user never stored notification settings.
	ErrSettingsNotFound = errors.New("notification settings not found")
)

// NotificationRepository persists the in-app inbox.
type NotificationRepository interface {
	// Create persists a notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByUser returns a page of the user's notifications, newest first, with the total count.
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Notification, int64, error)

	// MarkRead marks the user's notification as read.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

// NotificationSettingsRepository persists per-user delivery preferences.
type NotificationSettingsRepository interface {
	// FindByUser returns the user's settings or ErrSettingsNotFound.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error)

	// Upsert creates or replaces the user's settings.
	Upsert(ctx context.Context, settings *entity.NotificationSettings) error
}
