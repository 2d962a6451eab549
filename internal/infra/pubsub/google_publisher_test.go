package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"adreach/internal/domain/constants"
	"adreach/internal/domain/entity"
	"adreach/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	testProject = "adreach-test"
	testTopic   = "notifications"
)

func newFakeClient(t *testing.T) (*pubsub.Client, *pstest.Server) {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	client, err := pubsub.NewClient(t.Context(), testProject, option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, srv
}

func TestGooglePublisher_Publish(t *testing.T) {
	client, srv := newFakeClient(t)
	_, err := client.TopicAdminClient.CreateTopic(t.Context(), &pubsubpb.Topic{
		Name: "projects/" + testProject + "/topics/" + testTopic,
	})
	require.NoError(t, err)

	p, err := newGooglePublisher(t.Context(), client, testProject, testTopic, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	event := &service.NotificationEvent{
		RequestID: "req-42",
		UserID:    "user-1",
		Type:      entity.NotificationCampaignCompleted,
		Title:     "Campaign ended",
	}
	require.NoError(t, p.PublishNotificationEvent(context.Background(), event))
	require.NoError(t, p.Close())

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "user-1", msgs[0].Attributes[constants.AttrUserID])
	assert.Equal(t, "req-42", msgs[0].Attributes[constants.AttrRequestID])
	assert.Equal(t, "user-1", msgs[0].OrderingKey)

	var got service.NotificationEvent
	require.NoError(t, json.Unmarshal(msgs[0].Data, &got))
	assert.Equal(t, event.Title, got.Title)
}

func TestGooglePublisher_MissingTopic(t *testing.T) {
	client, _ := newFakeClient(t)

	_, err := newGooglePublisher(t.Context(), client, testProject, "missing", slog.New(slog.DiscardHandler))
	assert.ErrorContains(t, err, "topic missing unavailable")
}
