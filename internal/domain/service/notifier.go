package service

import (
	"context"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
)

// Notifier hands a notification to the delivery pipeline without waiting for it.
// Failures are logged by the implementation and never reach the caller.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, message entity.NotificationMessage)
}
