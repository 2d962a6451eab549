package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adreach/config"
	"adreach/internal/domain/constants"
	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/service"
	mockusecase "adreach/internal/mocks/usecase"
	"adreach/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, data string, attrs map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/p/subscriptions/notifications"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodeEvent(t *testing.T, event *service.NotificationEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func newTestPushHandler(uc usecase.NotificationUsecase) *PushHandler {
	return NewPushHandler(PushHandlerParams{
		Config:         config.Defaults(),
		Logger:         slog.New(slog.DiscardHandler),
		NotificationUC: uc,
	})
}

func TestHandlePush(t *testing.T) {
	event := &service.NotificationEvent{
		RequestID: "req-from-payload",
		UserID:    "5f0c8f5e-8a55-4c1e-9d0a-3e7e1c2a9b11",
		Type:      entity.NotificationPaymentSuccess,
		Title:     "Payment received",
		Message:   "Your campaign budget was topped up",
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setup      func(uc *mockusecase.MockNotificationUsecase)
		wantStatus int
	}{
		{
			name: "delivered",
			body: func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			setup: func(uc *mockusecase.MockNotificationUsecase) {
				uc.EXPECT().Deliver(mock.Anything, mock.MatchedBy(func(got *service.NotificationEvent) bool {
					return got.UserID == event.UserID && got.Type == event.Type
				})).Return(&usecase.DeliveryResult{Stored: true, PushSent: 2}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "skipped by settings",
			body: func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			setup: func(uc *mockusecase.MockNotificationUsecase) {
				uc.EXPECT().Deliver(mock.Anything, mock.Anything).
					Return(&usecase.DeliveryResult{Skipped: "disabled"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad base64 is acknowledged",
			body:       func(t *testing.T) string { return pushBody(t, "%%%", nil) },
			wantStatus: http.StatusOK,
		},
		{
			name: "bad json is acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, base64.StdEncoding.EncodeToString([]byte("{not json")), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid event is acknowledged",
			body: func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			setup: func(uc *mockusecase.MockNotificationUsecase) {
				uc.EXPECT().Deliver(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrValidationFailed.WithDetails("invalid user_id"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "storage failure is retried",
			body: func(t *testing.T) string { return pushBody(t, encodeEvent(t, event), nil) },
			setup: func(uc *mockusecase.MockNotificationUsecase) {
				uc.EXPECT().Deliver(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "malformed envelope",
			body:       func(*testing.T) string { return "{" },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockNotificationUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			rec := servePush(newTestPushHandler(uc), tt.body(t))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_RejectsUnverifiedToken(t *testing.T) {
	h := newTestPushHandler(mockusecase.NewMockNotificationUsecase(t))
	h.validateToken = func(*http.Request) error { return errors.New("missing authorization header") }

	rec := servePush(h, pushBody(t, "", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_TokenValidation(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		env      string
		want     bool
	}{
		{name: "google in production", provider: constants.PubSubProviderGoogle, env: constants.EnvProduction, want: true},
		{name: "google in develop", provider: constants.PubSubProviderGoogle, env: constants.EnvDevelop, want: false},
		{name: "local emulator", provider: constants.PubSubProviderLocal, env: constants.EnvProduction, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.Env.Env = tt.env
			cfg.PubSub = &config.PubSubConfig{Provider: tt.provider, ProjectID: "p", TopicID: "t"}

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.New(slog.DiscardHandler)})
			assert.Equal(t, tt.want, h.validateToken != nil)
		})
	}
}

func TestExtractRequestID(t *testing.T) {
	event := &service.NotificationEvent{RequestID: "from-payload"}

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{constants.AttrRequestID: "from-attrs"}
	assert.Equal(t, "from-attrs", extractRequestID(t.Context(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-payload", extractRequestID(t.Context(), &msg, event))

	assert.NotEmpty(t, extractRequestID(t.Context(), &msg, &service.NotificationEvent{}))
}
