package postgres

import (
	"context"

	"adreach/internal/domain/entity"
	"adreach/internal/domain/repository"
	"adreach/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// Create inserts a comment. A reply is inserted in the same statement that checks its
// parent is a top-level comment of the same campaign.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if !comment.IsReply() {
		row := fromCommentDomain(comment)
		if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrCampaignNotFound
			}

			return wrapWriteError(err, "failed to create comment")
		}
		comment.ID = row.ID
		comment.CreatedAt = row.CreatedAt

		return nil
	}

	var inserted []struct {
		ID uuid.UUID
	}
	err := repo.db.WithContext(ctx).Raw(`
		INSERT INTO `+model.TableComments+` (id, campaign_id, user_id, content, parent_id, created_at, updated_at)
		SELECT @id, @campaign, @user, @content, p.id, @now, @now
		FROM `+model.TableComments+` p
		WHERE p.id = @parent AND p.campaign_id = @campaign AND p.parent_id IS NULL
		RETURNING id`,
		map[string]any{
			"id":       comment.ID,
			"campaign": comment.CampaignID,
			"user":     comment.UserID,
			"content":  comment.Content,
			"parent":   *comment.ParentID,
			"now":      comment.CreatedAt,
		},
	).Scan(&inserted).Error
	if err != nil {
		return wrapWriteError(err, "failed to create reply")
	}
	if len(inserted) == 0 {
		return repository.ErrInvalidParent
	}
	comment.ID = inserted[0].ID

	return nil
}

// FindByID retrieves a comment.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var row model.CommentModel
	if err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return toCommentDomain(&row), nil
}

// ListByCampaign returns every comment of the campaign joined with the author's name.
func (repo *commentRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Comment, error) {
	var rows []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Table(model.TableComments+" AS c").
		Select("c.*, COALESCE(u.full_name, '') AS author_name").
		Joins("LEFT JOIN users u ON u.id = c.user_id").
		Where("c.campaign_id = ?", campaignID).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, toCommentDomain(row))
	}

	return comments, nil
}

// DeleteWithReplies removes a comment and its replies.
func (repo *commentRepository) DeleteWithReplies(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? OR parent_id = ?", id, id).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrCommentNotFound
	}

	return result.RowsAffected, nil
}

// DeleteByCampaign removes every comment of the campaign.
func (repo *commentRepository) DeleteByCampaign(ctx context.Context, campaignID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Delete(&model.CommentModel{}).Error

	return errors.Wrap(err, "failed to delete campaign comments")
}

// --- Mapper Functions ---

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:         data.ID,
		CampaignID: data.CampaignID,
		UserID:     data.UserID,
		AuthorName: data.AuthorName,
		Content:    data.Content,
		ParentID:   data.ParentID,
		CreatedAt:  data.CreatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:         data.ID,
		CampaignID: data.CampaignID,
		UserID:     data.UserID,
		Content:    data.Content,
		ParentID:   data.ParentID,
		CreatedAt:  data.CreatedAt,
	}
}
