package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "adreach/internal/delivery/context"
	"adreach/internal/domain/entity"
	"adreach/internal/domain/service"
	mockSvc "adreach/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishingNotifier_Notify(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	n := newPublishingNotifier(publisher, discardLogger())
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return fixed }

	userID := uuid.New()
	campaignID := uuid.New()

	var got *service.NotificationEvent
	publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, event *service.NotificationEvent) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			got = event
		}).
		Return(nil).
		Once()

	ctx, cancel := context.WithCancel(deliverycontext.WithRequestID(context.Background(), "req-42"))
	n.Notify(ctx, userID, entity.NotificationMessage{
		Type:    entity.NotificationLowBudgetAlert,
		Title:   "Low budget",
		Message: "Your campaign has less than 20% budget left",
		Data:    map[string]any{"campaign_id": campaignID.String()},
	})
	// The request finishing must not cancel the publish.
	cancel()

	require.NoError(t, n.drain(context.Background()))
	require.NotNil(t, got)
	assert.Equal(t, "req-42", got.RequestID)
	assert.Equal(t, userID.String(), got.UserID)
	assert.Equal(t, entity.NotificationLowBudgetAlert, got.Type)
	assert.Equal(t, campaignID.String(), got.Data["campaign_id"])
	assert.Equal(t, fixed, got.OccurredAt)
}

func TestPublishingNotifier_PublishErrorIsSwallowed(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	n := newPublishingNotifier(publisher, discardLogger())

	publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.Anything).
		Return(errors.New("topic not found")).
		Once()

	n.Notify(context.Background(), uuid.New(), entity.NotificationMessage{Type: entity.NotificationNewComment})

	assert.NoError(t, n.drain(context.Background()))
}

func TestPublishingNotifier_DrainHonorsDeadline(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	n := newPublishingNotifier(publisher, discardLogger())

	release := make(chan struct{})
	publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.NotificationEvent) error {
			<-release

			return nil
		}).
		Once()

	n.Notify(context.Background(), uuid.New(), entity.NotificationMessage{Type: entity.NotificationPaymentSuccess})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, n.drain(ctx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, n.drain(context.Background()))
}
