package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"adreach/internal/domain/constants"
	"adreach/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// publishDelay bounds how long a message waits in the client-side batch.
const publishDelay = 50 * time.Millisecond

type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	ownClient bool
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to Pub/Sub and verifies the topic exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	p, err := newGooglePublisher(ctx, client, projectID, topicID, logger)
	if err != nil {
		_ = client.Close()

		return nil, err
	}
	p.ownClient = true

	return p, nil
}

// newGooglePublisher builds a publisher on an existing client. The caller keeps
// ownership of client.
func newGooglePublisher(ctx context.Context, client *pubsub.Client, projectID, topicID string, logger *slog.Logger) (*googlePublisher, error) {
	topicName := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName}); err != nil {
		return nil, errors.Wrapf(err, "topic %s unavailable", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = publishDelay
	// Notifications for one user are delivered in publish order.
	publisher.EnableMessageOrdering = true

	logger.Info("Pub/Sub publisher ready",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishNotificationEvent blocks until the server acknowledges the message.
func (p *googlePublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal notification event")
	}

	msg := &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.UserID,
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		p.publisher.ResumePublish(msg.OrderingKey)

		return errors.Wrapf(err, "publish %s event", event.Type)
	}

	p.logger.DebugContext(ctx, "notification event published",
		slog.String("type", string(event.Type)),
		slog.String("user_id", event.UserID),
		slog.String("server_id", serverID),
	)

	return nil
}

// eventAttributes carry what subscriptions filter on and the trace id.
func eventAttributes(event *service.NotificationEvent) map[string]string {
	attrs := map[string]string{
		constants.AttrUserID:           event.UserID,
		constants.AttrNotificationType: string(event.Type),
	}
	if event.RequestID != "" {
		attrs[constants.AttrRequestID] = event.RequestID
	}

	return attrs
}

// Close flushes pending messages.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()
	if !p.ownClient {
		return nil
	}

	return errors.WithStack(p.client.Close())
}
