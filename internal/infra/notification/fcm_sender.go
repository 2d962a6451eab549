// Package notification sends push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"adreach/config"
	"adreach/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// multicastClient is the slice of messaging.Client the sender uses.
type multicastClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type fcmSender struct {
	client multicastClient
}

// NewFCMSender connects to Firebase with the configured project and credentials file.
// Without a credentials file, application default credentials are used.
func NewFCMSender(ctx context.Context, cfg *config.FirebaseConfig) (service.PushSender, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmSender{client: client}, nil
}

func (s *fcmSender) Send(ctx context.Context, token string, msg service.PushMessage) error {
	message := &messaging.Message{
		Token:        token,
		Notification: notificationOf(msg),
		Data:         msg.Data,
		Android:      androidHighPriority(),
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatch multicasts msg. Tokens FCM reports as invalid or unregistered come back
// in InvalidTokens; other per-token failures only count as Failed.
func (s *fcmSender) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushBatchResult, error) {
	if len(tokens) == 0 {
		return &service.PushBatchResult{}, nil
	}
	if len(tokens) > service.MaxPushBatch {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxPushBatch)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: notificationOf(msg),
		Data:         msg.Data,
		Android:      androidHighPriority(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.PushBatchResult{
		Sent:   response.SuccessCount,
		Failed: response.FailureCount,
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

func notificationOf(msg service.PushMessage) *messaging.Notification {
	return &messaging.Notification{Title: msg.Title, Body: msg.Body}
}

func androidHighPriority() *messaging.AndroidConfig {
	return &messaging.AndroidConfig{Priority: "high"}
}

// logOnlySender stands in when Firebase is not configured. Inbox entries are still
// written; pushes are only logged.
type logOnlySender struct {
	logger *slog.Logger
}

// NewLogOnlySender returns a PushSender that reports every push as delivered.
func NewLogOnlySender(logger *slog.Logger) service.PushSender {
	return &logOnlySender{logger: logger}
}

func (s *logOnlySender) Send(ctx context.Context, _ string, msg service.PushMessage) error {
	s.logger.DebugContext(ctx, "Push disabled, skipping notification", slog.String("title", msg.Title), slog.Int("tokens", 1))

	return nil
}

func (s *logOnlySender) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushBatchResult, error) {
	s.logger.DebugContext(ctx, "Push disabled, skipping notification", slog.String("title", msg.Title), slog.Int("tokens", len(tokens)))

	return &service.PushBatchResult{Sent: len(tokens)}, nil
}
