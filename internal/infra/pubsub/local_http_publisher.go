package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"adreach/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/notifications-push"
	localRequestTimeout = 30 * time.Second
	localMaxAttempts    = 3
	localRetryBackoff   = 200 * time.Millisecond
)

// PubSubPushMessage is the envelope Google Pub/Sub posts to push endpoints.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher posts push envelopes straight to the notification worker so
// development runs without a Pub/Sub emulator. Like a push subscription it redelivers
// when the worker answers 5xx.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	backoff    time.Duration
}

// NewLocalHTTPPublisher creates a publisher that pushes to endpoint, usually the worker's /push.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localRequestTimeout},
		logger:     logger,
		backoff:    localRetryBackoff,
	}
}

func (p *localHTTPPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	body, messageID, err := pushEnvelope(event, time.Now())
	if err != nil {
		return err
	}
	logger := p.logger.With(slog.String("message_id", messageID), slog.String("user_id", event.UserID))

	var lastErr error
	for attempt := 1; attempt <= localMaxAttempts; attempt++ {
		retry, err := p.post(ctx, body, event.RequestID)
		if err == nil {
			logger.DebugContext(ctx, "[LocalPubSub] Event delivered", slog.Int("attempt", attempt))

			return nil
		}
		lastErr = err
		if !retry || attempt == localMaxAttempts {
			break
		}

		logger.WarnContext(ctx, "[LocalPubSub] Push failed, redelivering", slog.Int("attempt", attempt), slog.Any("error", err))
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(time.Duration(attempt) * p.backoff):
		}
	}

	return lastErr
}

// post sends one delivery attempt and reports whether a failure is worth retrying.
func (p *localHTTPPublisher) post(ctx context.Context, body []byte, requestID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return false, nil
	case resp.StatusCode >= 500:
		return true, errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	default:
		return false, errors.Errorf("worker rejected message: %d", resp.StatusCode)
	}
}

// pushEnvelope wraps event the way a push subscription would.
func pushEnvelope(event *service.NotificationEvent, now time.Time) ([]byte, string, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, "", errors.Wrap(err, "marshal notification event")
	}

	msg := PubSubPushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339Nano)
	msg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, "", errors.Wrap(err, "marshal push envelope")
	}

	return body, msg.Message.MessageID, nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
