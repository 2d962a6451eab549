package notification

import (
	"context"
	"log/slog"
	"testing"

	"adreach/config"
	"adreach/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticastClient struct {
	sent      []*messaging.Message
	multicast []*messaging.MulticastMessage
	response  *messaging.BatchResponse
	err       error
}

func (f *fakeMulticastClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)

	return "projects/p/messages/1", f.err
}

func (f *fakeMulticastClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = append(f.multicast, message)

	return f.response, f.err
}

func TestFCMSender_SendBatch(t *testing.T) {
	client := &fakeMulticastClient{response: &messaging.BatchResponse{
		SuccessCount: 2,
		FailureCount: 1,
		Responses: []*messaging.SendResponse{
			{Success: true},
			{Success: false, Error: errors.New("internal error")},
			{Success: true},
		},
	}}
	sender := &fcmSender{client: client}
	msg := service.PushMessage{Title: "Low budget", Body: "20% left", Data: map[string]string{"campaign_id": "c-1"}}

	result, err := sender.SendBatch(context.Background(), []string{"a", "b", "c"}, msg)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, result.InvalidTokens)

	require.Len(t, client.multicast, 1)
	assert.Equal(t, []string{"a", "b", "c"}, client.multicast[0].Tokens)
	assert.Equal(t, "Low budget", client.multicast[0].Notification.Title)
	assert.Equal(t, "c-1", client.multicast[0].Data["campaign_id"])
	assert.Equal(t, "high", client.multicast[0].Android.Priority)
}

func TestFCMSender_SendBatchLimits(t *testing.T) {
	client := &fakeMulticastClient{}
	sender := &fcmSender{client: client}

	result, err := sender.SendBatch(context.Background(), nil, service.PushMessage{})
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
	assert.Empty(t, client.multicast)

	_, err = sender.SendBatch(context.Background(), make([]string, service.MaxPushBatch+1), service.PushMessage{})
	assert.ErrorContains(t, err, "exceeds limit")
}

func TestFCMSender_SendError(t *testing.T) {
	sender := &fcmSender{client: &fakeMulticastClient{err: errors.New("quota exceeded")}}

	err := sender.Send(context.Background(), "a", service.PushMessage{Title: "t"})
	assert.ErrorContains(t, err, "failed to send notification")

	_, err = sender.SendBatch(context.Background(), []string{"a"}, service.PushMessage{Title: "t"})
	assert.ErrorContains(t, err, "failed to send multicast notification")
}

func TestLogOnlySender(t *testing.T) {
	sender := NewLogOnlySender(slog.New(slog.DiscardHandler))

	result, err := sender.SendBatch(context.Background(), []string{"a", "b", "c"}, service.PushMessage{Title: "Title"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Sent)
	assert.Zero(t, result.Failed)

	assert.NoError(t, sender.Send(context.Background(), "a", service.PushMessage{Title: "Title"}))
}

func TestNewPushSender_WithoutFirebase(t *testing.T) {
	cfg := config.Defaults()
	cfg.Firebase = nil

	sender, err := NewPushSender(t.Context(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.IsType(t, &logOnlySender{}, sender)
}
