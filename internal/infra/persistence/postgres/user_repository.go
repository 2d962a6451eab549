package postgres

import (
	"context"
	"time"

	"adreach/internal/domain/entity"
	"adreach/internal/domain/repository"
	"adreach/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// UpdateLocation stores the user's last reported coordinates.
func (repo *userRepository) UpdateLocation(ctx context.Context, id uuid.UUID, latitude, longitude float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"latitude":   latitude,
			"longitude":  longitude,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetActiveStatus bans or reinstates a user.
func (repo *userRepository) SetActiveStatus(ctx context.Context, id uuid.UUID, status entity.ActiveStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"active_status": string(status),
			"updated_at":    time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set user active status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Count counts users with role, optionally restricted to status.
func (repo *userRepository) Count(ctx context.Context, role entity.Role, status *entity.ActiveStatus) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", string(role))
	if status != nil {
		query = query.Where("active_status = ?", string(*status))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		FullName:     data.FullName,
		Role:         entity.Role(data.Role),
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		DateOfBirth:  data.DateOfBirth,
		ActiveStatus: entity.ActiveStatus(data.ActiveStatus),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
