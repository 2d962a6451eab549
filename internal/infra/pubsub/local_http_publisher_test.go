package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"adreach/internal/domain/constants"
	"adreach/internal/domain/entity"
	"adreach/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.NotificationEvent{
		RequestID:  "req-7",
		UserID:     "6f1c2d9e-0000-4000-8000-000000000001",
		Type:       entity.NotificationCampaignCompleted,
		Title:      "Campaign completed",
		Message:    "Your campaign has ended",
		OccurredAt: time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), event))

	assert.Equal(t, "req-7", requestIDHeader)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, event.UserID, received.Message.Attributes[constants.AttrUserID])
	assert.Equal(t, string(entity.NotificationCampaignCompleted), received.Message.Attributes[constants.AttrNotificationType])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.NotificationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.Title, decoded.Title)
	assert.Equal(t, event.Type, decoded.Type)
}

func TestLocalHTTPPublisher_RedeliversOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
	publisher.backoff = time.Millisecond

	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{UserID: "u"}))
	assert.Equal(t, int32(2), calls.Load())
}

func TestLocalHTTPPublisher_GivesUp(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
		wantErr   string
	}{
		{name: "server error after all attempts", status: http.StatusServiceUnavailable, wantCalls: localMaxAttempts, wantErr: "503"},
		{name: "client error without retry", status: http.StatusBadRequest, wantCalls: 1, wantErr: "rejected message: 400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
			publisher.backoff = time.Millisecond

			err := publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{UserID: "u"})
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}
