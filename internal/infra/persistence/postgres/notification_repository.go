package postgres

import (
	"context"

	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	"adreach/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListByUser returns a page of the user's notifications, newest first.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Notification, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications")
	}

	var notificationModels []*model.NotificationModel
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, total, nil
}

// MarkRead marks the user's notification as read. Marking twice is not an error.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// notificationSettingsRepository implements the repository.NotificationSettingsRepository interface.
type notificationSettingsRepository struct {
	db *gorm.DB
}

// NewNotificationSettingsRepository is the constructor for notificationSettingsRepository.
func NewNotificationSettingsRepository(db *gorm.DB) repository.NotificationSettingsRepository {
	return &notificationSettingsRepository{
		db: db,
	}
}

// FindByUser returns the user's stored settings.
func (repo *notificationSettingsRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error) {
	var settingsM model.NotificationSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification settings")
	}

	return toNotificationSettingsDomain(&settingsM), nil
}

// Upsert creates or replaces the user's settings.
func (repo *notificationSettingsRepository) Upsert(ctx context.Context, settings *entity.NotificationSettings) error {
	settingsM := fromNotificationSettingsDomain(settings)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(settingsM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert notification settings")
	}
	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      entity.NotificationType(data.Type),
		Title:     data.Title,
		Message:   data.Message,
		Data:      map[string]any(data.Data),
		IsRead:    data.IsRead,
		CreatedAt: data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      string(data.Type),
		Title:     data.Title,
		Message:   data.Message,
		Data:      datatypes.JSONMap(data.Data),
		IsRead:    data.IsRead,
		CreatedAt: data.CreatedAt,
	}
}

func toNotificationSettingsDomain(data *model.NotificationSettingsModel) *entity.NotificationSettings {
	return &entity.NotificationSettings{
		UserID:                     data.UserID,
		CampaignPerformanceUpdates: data.CampaignPerformanceUpdates,
		LiveCampaignUpdates:        data.LiveCampaignUpdates,
		LowBudgetAlert:             data.LowBudgetAlert,
		PaymentTransactionUpdates:  data.PaymentTransactionUpdates,
		NewCommentNotification:     data.NewCommentNotification,
		PushNotifications:          data.PushNotifications,
		UpdatedAt:                  data.UpdatedAt,
	}
}

func fromNotificationSettingsDomain(data *entity.NotificationSettings) *model.NotificationSettingsModel {
	return &model.NotificationSettingsModel{
		UserID:                     data.UserID,
		CampaignPerformanceUpdates: data.CampaignPerformanceUpdates,
		LiveCampaignUpdates:        data.LiveCampaignUpdates,
		LowBudgetAlert:             data.LowBudgetAlert,
		PaymentTransactionUpdates:  data.PaymentTransactionUpdates,
		NewCommentNotification:     data.NewCommentNotification,
		PushNotifications:          data.PushNotifications,
		UpdatedAt:                  data.UpdatedAt,
	}
}
