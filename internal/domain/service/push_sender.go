package service

import (
	"context"
)

// PushMessage is what a device shows plus the data handed to the app.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushBatchResult counts per-token outcomes of one batch. InvalidTokens are tokens the
// provider rejected for good and that should be deactivated.
type PushBatchResult struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// PushSender delivers push notifications to device tokens.
type PushSender interface {
	// Send pushes msg to a single device token.
	Send(ctx context.Context, token string, msg PushMessage) error

	// SendBatch pushes msg to at most MaxPushBatch tokens.
	SendBatch(ctx context.Context, tokens []string, msg PushMessage) (*PushBatchResult, error)
}

// MaxPushBatch is the largest token batch FCM accepts per multicast.
const MaxPushBatch = 500
