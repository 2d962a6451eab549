package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "adreach/internal/delivery/context"
	"adreach/internal/domain/entity"
	"adreach/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultPublishTimeout = 10 * time.Second

// publishingNotifier hands notifications to the EventPublisher in the background.
// The triggering request never waits on, or fails because of, the publish.
type publishingNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	timeout   time.Duration
	now       func() time.Time
	inflight  sync.WaitGroup
}

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc        fx.Lifecycle
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewNotifier creates a Notifier that drains pending publishes on shutdown.
func NewNotifier(params NotifierParams) service.Notifier {
	n := newPublishingNotifier(params.Publisher, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: n.drain,
	})

	return n
}

func newPublishingNotifier(publisher service.EventPublisher, logger *slog.Logger) *publishingNotifier {
	return &publishingNotifier{
		publisher: publisher,
		logger:    logger,
		timeout:   defaultPublishTimeout,
		now:       time.Now,
	}
}

// Notify publishes message for userID without blocking the caller.
func (n *publishingNotifier) Notify(ctx context.Context, userID uuid.UUID, message entity.NotificationMessage) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)
	event := &service.NotificationEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     userID.String(),
		Type:       message.Type,
		Title:      message.Title,
		Message:    message.Message,
		Data:       message.Data,
		OccurredAt: n.now().UTC(),
	}

	// The publish outlives the request, so only values are carried over.
	detached := context.WithoutCancel(ctx)

	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()

		publishCtx, cancel := context.WithTimeout(detached, n.timeout)
		defer cancel()

		if err := n.publisher.PublishNotificationEvent(publishCtx, event); err != nil {
			logger.WarnContext(publishCtx, "Failed to publish notification",
				slog.String("user_id", event.UserID),
				slog.String("type", string(event.Type)),
				slog.Any("error", err),
			)
		}
	}()
}

// drain waits for in-flight publishes or until ctx is done.
func (n *publishingNotifier) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		n.logger.Warn("Notifier shutdown before pending publishes finished")

		return ctx.Err()
	}
}
