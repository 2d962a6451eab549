package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	deliverycontext "adreach/internal/delivery/context"
	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	"adreach/internal/domain/service"
	"adreach/internal/errors"
	"adreach/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultInboxLimit = 20
	maxInboxLimit     = 100

	skipNoSettings = "no notification settings"
	skipDisabled   = "disabled by settings"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	settingsRepo     repository.NotificationSettingsRepository
	deviceRepo       repository.DeviceRepository
	pushSvc          service.PushSender
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	settingsRepo repository.NotificationSettingsRepository,
	deviceRepo repository.DeviceRepository,
	pushSvc service.PushSender,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
		deviceRepo:       deviceRepo,
		pushSvc:          pushSvc,
		logger:           logger,
	}
}

// Deliver gates the event by the recipient's settings, stores it in the inbox and pushes
// it to the recipient's active devices. Malformed events return a validation error; any
// other error is worth retrying.
func (s *notificationService) Deliver(ctx context.Context, event *service.NotificationEvent) (*usecase.DeliveryResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid user_id")
	}
	if event.Type == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("type is required")
	}

	settings, err := s.settingsRepo.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		logger.Info("Dropping notification", slog.String("userID", event.UserID), slog.String("reason", skipNoSettings))

		return &usecase.DeliveryResult{Skipped: skipNoSettings}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notification settings")
	}
	if !settings.Allows(event.Type) {
		return &usecase.DeliveryResult{Skipped: skipDisabled}, nil
	}

	createdAt := event.OccurredAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      event.Type,
		Title:     event.Title,
		Message:   event.Message,
		Data:      event.Data,
		CreatedAt: createdAt,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to store notification")
	}

	result := &usecase.DeliveryResult{Stored: true}
	if settings.PushNotifications {
		s.push(ctx, notification, result)
	}

	return result, nil
}

// push sends the notification to every active device in Firebase sized batches.
// Push failures are recorded on result and never fail the delivery.
func (s *notificationService) push(ctx context.Context, notification *entity.Notification, result *usecase.DeliveryResult) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, notification.UserID)
	if err != nil {
		logger.Error("Failed to load devices", slog.Any("userID", notification.UserID), slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}
	msg := service.PushMessage{
		Title: notification.Title,
		Body:  notification.Message,
		Data:  stringifyData(notification),
	}

	var invalidTokens []string
	for batch := range slices.Chunk(tokens, service.MaxPushBatch) {
		sent, err := s.pushSvc.SendBatch(ctx, batch, msg)
		if err != nil {
			logger.Error("Failed to send push batch", slog.Int("size", len(batch)), slog.Any("error", err))
			result.PushFailed += len(batch)

			continue
		}
		result.PushSent += sent.Sent
		result.PushFailed += sent.Failed
		invalidTokens = append(invalidTokens, sent.InvalidTokens...)
	}

	if len(invalidTokens) == 0 {
		return
	}
	result.InvalidTokens = len(invalidTokens)
	if err := s.deviceRepo.DeactivateTokens(ctx, invalidTokens); err != nil {
		logger.Error("Failed to deactivate invalid tokens", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
	}
}

// stringifyData flattens the payload to the string map FCM requires.
func stringifyData(notification *entity.Notification) map[string]string {
	data := make(map[string]string, len(notification.Data)+2)
	for k, v := range notification.Data {
		data[k] = fmt.Sprint(v)
	}
	data["notification_id"] = notification.ID.String()
	data["type"] = string(notification.Type)

	return data
}

// GetSettings returns the stored settings, or the defaults when none were saved yet.
func (s *notificationService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error) {
	settings, err := s.settingsRepo.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return entity.DefaultNotificationSettings(userID), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notification settings")
	}

	return settings, nil
}

func (s *notificationService) UpdateSettings(ctx context.Context, userID uuid.UUID, input usecase.UpdateSettingsInput) (*entity.NotificationSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&settings.CampaignPerformanceUpdates, input.CampaignPerformanceUpdates)
	apply(&settings.LiveCampaignUpdates, input.LiveCampaignUpdates)
	apply(&settings.LowBudgetAlert, input.LowBudgetAlert)
	apply(&settings.PaymentTransactionUpdates, input.PaymentTransactionUpdates)
	apply(&settings.NewCommentNotification, input.NewCommentNotification)
	apply(&settings.PushNotifications, input.PushNotifications)
	settings.UpdatedAt = time.Now()

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to save notification settings")
	}

	return settings, nil
}

// List returns the user's inbox, newest first.
func (s *notificationService) List(ctx context.Context, userID uuid.UUID, page usecase.Page) (*usecase.NotificationPage, error) {
	page, offset := page.Normalize(defaultInboxLimit, maxInboxLimit)

	notifications, total, err := s.notificationRepo.ListByUser(ctx, userID, offset, page.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return &usecase.NotificationPage{
		Notifications: notifications,
		Page:          page.Page,
		Limit:         page.Limit,
		TotalCount:    total,
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := s.notificationRepo.MarkRead(ctx, notificationID, userID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}

	return errors.Wrap(err, "failed to mark notification read")
}
