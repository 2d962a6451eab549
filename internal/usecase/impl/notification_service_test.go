package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	"adreach/internal/domain/service"
	mockRepo "adreach/internal/mocks/repository"
	mockSvc "adreach/internal/mocks/service"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	settingsRepo     *mockRepo.MockNotificationSettingsRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	pushSvc          *mockSvc.MockPushSender
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	settingsRepo := mockRepo.NewMockNotificationSettingsRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushSvc := mockSvc.NewMockPushSender(t)

	service := NewNotificationService(notificationRepo, settingsRepo, deviceRepo, pushSvc, discardLogger())

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
		deviceRepo:       deviceRepo,
		pushSvc:          pushSvc,
	}
}

func lowBudgetEvent(userID uuid.UUID) *service.NotificationEvent {
	return &service.NotificationEvent{
		UserID:     userID.String(),
		Type:       entity.NotificationLowBudgetAlert,
		Title:      "Low Budget Alert",
		Message:    "Campaign \"Monsoon Sale\" has less than 20% budget remaining",
		Data:       map[string]any{"campaign_id": "c-1", "remaining_spending": "150.00"},
		OccurredAt: fixedNow,
	}
}

func devicesWithTokens(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   userID,
			FCMToken: fmt.Sprintf("token-%d", i),
			Platform: "android",
			IsActive: true,
		})
	}

	return devices
}

func TestNotificationService_Deliver_StoresAndPushes(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := lowBudgetEvent(userID)

	fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(entity.DefaultNotificationSettings(userID), nil)

	var stored *entity.Notification
	fx.notificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) { stored = n }).
		Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, 2), nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-0", "token-1"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Title == event.Title && msg.Body == event.Message &&
				msg.Data["campaign_id"] == "c-1" && msg.Data["type"] == string(entity.NotificationLowBudgetAlert) && msg.Data["notification_id"] != ""
		})).
		Return(&service.PushBatchResult{Sent: 1, Failed: 1, InvalidTokens: []string{"token-1"}}, nil)
	fx.deviceRepo.EXPECT().DeactivateTokens(ctx, []string{"token-1"}).Return(nil)

	result, err := fx.service.Deliver(ctx, event)
	require.NoError(t, err)
	assert.True(t, result.Stored)
	assert.Equal(t, 1, result.PushSent)
	assert.Equal(t, 1, result.PushFailed)
	assert.Equal(t, 1, result.InvalidTokens)

	require.NotNil(t, stored)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, fixedNow, stored.CreatedAt)
	assert.False(t, stored.IsRead)
}

func TestNotificationService_Deliver_BatchesDevices(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(entity.DefaultNotificationSettings(userID), nil)
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, 501), nil)
	fx.pushSvc.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 500 }), mock.Anything).
		Return(&service.PushBatchResult{Sent: 500}, nil).Once()
	fx.pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-500"}, mock.Anything).
		Return(nil, errors.New("fcm unavailable")).Once()

	result, err := fx.service.Deliver(ctx, lowBudgetEvent(userID))
	require.NoError(t, err)
	assert.Equal(t, 500, result.PushSent)
	assert.Equal(t, 1, result.PushFailed)
	assert.Zero(t, result.InvalidTokens)
}

func TestNotificationService_Deliver_Skips(t *testing.T) {
	t.Run("no settings row", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrSettingsNotFound)

		result, err := fx.service.Deliver(ctx, lowBudgetEvent(userID))
		require.NoError(t, err)
		assert.False(t, result.Stored)
		assert.Equal(t, "no notification settings", result.Skipped)
	})

	t.Run("category disabled", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		userID := uuid.New()
		settings := entity.DefaultNotificationSettings(userID)
		settings.LowBudgetAlert = false

		fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(settings, nil)

		result, err := fx.service.Deliver(ctx, lowBudgetEvent(userID))
		require.NoError(t, err)
		assert.Equal(t, "disabled by settings", result.Skipped)
	})

	t.Run("push disabled stores only", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		userID := uuid.New()
		settings := entity.DefaultNotificationSettings(userID)
		settings.PushNotifications = false

		fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(settings, nil)
		fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

		result, err := fx.service.Deliver(ctx, lowBudgetEvent(userID))
		require.NoError(t, err)
		assert.True(t, result.Stored)
		assert.Zero(t, result.PushSent)
	})
}

func TestNotificationService_Deliver_Errors(t *testing.T) {
	t.Run("malformed user id", func(t *testing.T) {
		fx := createTestNotificationService(t)
		event := lowBudgetEvent(uuid.New())
		event.UserID = "not-a-uuid"

		_, err := fx.service.Deliver(context.Background(), event)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("store failure is retryable", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(entity.DefaultNotificationSettings(userID), nil)
		fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("connection refused"))

		_, err := fx.service.Deliver(ctx, lowBudgetEvent(userID))
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestNotificationService_GetSettings_Defaults(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrSettingsNotFound)

	settings, err := fx.service.GetSettings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultNotificationSettings(userID), settings)
}

func TestNotificationService_UpdateSettings(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	off := false

	fx.settingsRepo.EXPECT().FindByUser(ctx, userID).Return(entity.DefaultNotificationSettings(userID), nil)
	fx.settingsRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(s *entity.NotificationSettings) bool {
		return !s.PushNotifications && s.LowBudgetAlert && !s.UpdatedAt.IsZero()
	})).Return(nil)

	settings, err := fx.service.UpdateSettings(ctx, userID, usecase.UpdateSettingsInput{PushNotifications: &off})
	require.NoError(t, err)
	assert.False(t, settings.PushNotifications)
	assert.True(t, settings.CampaignPerformanceUpdates)
}

func TestNotificationService_List(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	inbox := []*entity.Notification{{ID: uuid.New(), UserID: userID, CreatedAt: fixedNow.Add(-time.Hour)}}

	fx.notificationRepo.EXPECT().ListByUser(ctx, userID, 0, 100).Return(inbox, int64(1), nil)

	page, err := fx.service.List(ctx, userID, usecase.Page{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit)
	assert.Equal(t, int64(1), page.TotalCount)
	assert.Equal(t, inbox, page.Notifications)
}

func TestNotificationService_MarkRead(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		userID, id := uuid.New(), uuid.New()

		fx.notificationRepo.EXPECT().MarkRead(ctx, id, userID).Return(nil)

		require.NoError(t, fx.service.MarkRead(ctx, userID, id))
	})

	t.Run("not the recipient", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		userID, id := uuid.New(), uuid.New()

		fx.notificationRepo.EXPECT().MarkRead(ctx, id, userID).Return(repository.ErrNotificationNotFound)

		err := fx.service.MarkRead(ctx, userID, id)
		assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})
}
