package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "adreach/internal/delivery/context"
	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	"adreach/internal/domain/service"
	"adreach/internal/errors"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxCommentLength = 2000

type commentService struct {
	txManager    repository.TransactionManager
	campaignRepo repository.CampaignRepository
	commentRepo  repository.CommentRepository
	userRepo     repository.UserRepository
	notifier     service.Notifier
	logger       *slog.Logger
	now          func() time.Time
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CampaignRepo repository.CampaignRepository
	CommentRepo  repository.CommentRepository
	UserRepo     repository.UserRepository
	Notifier     service.Notifier
	Logger       *slog.Logger
}

// NewCommentService creates the comment service.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:    params.TxManager,
		campaignRepo: params.CampaignRepo,
		commentRepo:  params.CommentRepo,
		userRepo:     params.UserRepo,
		notifier:     params.Notifier,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// Create adds a comment or a reply and bumps the campaign's comment counter.
func (s *commentService) Create(ctx context.Context, campaignID, userID uuid.UUID, input usecase.CreateCommentInput) (*entity.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("content exceeds %d characters", maxCommentLength))
	}

	author, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if author.IsBanned() {
		return nil, domainerrors.ErrUserBanned
	}

	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, campaignErr(err, "failed to find campaign")
	}

	if input.ParentID != nil {
		if err := s.checkParent(ctx, campaignID, *input.ParentID); err != nil {
			return nil, err
		}
	}

	comment := &entity.Comment{
		ID:         uuid.New(),
		CampaignID: campaignID,
		UserID:     userID,
		AuthorName: author.FullName,
		Content:    content,
		ParentID:   input.ParentID,
		CreatedAt:  s.now(),
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		err := factory.NewCommentRepository().Create(ctx, comment)
		if errors.Is(err, repository.ErrInvalidParent) {
			return domainerrors.ErrReplyDepthExceeded
		}
		if err != nil {
			return errors.Wrap(err, "failed to create comment")
		}
		_, err = factory.NewCampaignRepository().IncrementCounter(ctx, campaignID, entity.CounterComments, 1)

		return campaignErr(err, "failed to increment comment count")
	})
	if err != nil {
		return nil, err
	}

	if !campaign.IsOwnedBy(userID) {
		s.notifier.Notify(ctx, campaign.VendorID, entity.NotificationMessage{
			Type:    entity.NotificationNewComment,
			Title:   "New Comment",
			Message: fmt.Sprintf("%s commented on %q", author.FullName, campaign.Title),
			Data: map[string]any{
				"campaign_id": campaignID.String(),
				"comment_id":  comment.ID.String(),
			},
		})
	}

	return comment, nil
}

// checkParent allows replies only to top-level comments of the same campaign.
func (s *commentService) checkParent(ctx context.Context, campaignID, parentID uuid.UUID) error {
	parent, err := s.commentRepo.FindByID(ctx, parentID)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return domainerrors.ErrCommentNotFound.WithDetails("parent comment not found")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find parent comment")
	}
	if parent.CampaignID != campaignID {
		return domainerrors.ErrCommentCampaignMismatch
	}
	if parent.IsReply() {
		return domainerrors.ErrReplyDepthExceeded
	}

	return nil
}

func (s *commentService) List(ctx context.Context, campaignID uuid.UUID) ([]*entity.Comment, error) {
	if _, err := s.campaignRepo.FindByID(ctx, campaignID); err != nil {
		return nil, campaignErr(err, "failed to find campaign")
	}

	comments, err := s.commentRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return entity.BuildCommentTree(comments), nil
}

// Delete removes the comment with its replies. The counter drops by the rows removed.
func (s *commentService) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return domainerrors.ErrCommentNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find comment")
	}

	if comment.UserID != userID {
		campaign, err := s.campaignRepo.FindByID(ctx, comment.CampaignID)
		if err != nil {
			return campaignErr(err, "failed to find campaign")
		}
		if !campaign.IsOwnedBy(userID) {
			return domainerrors.ErrForbidden
		}
	}

	var removed int64
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		removed, err = factory.NewCommentRepository().DeleteWithReplies(ctx, commentID)
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to delete comment")
		}
		if removed == 0 {
			return nil
		}
		_, err = factory.NewCampaignRepository().IncrementCounter(ctx, comment.CampaignID, entity.CounterComments, -removed)

		return campaignErr(err, "failed to decrement comment count")
	})
	if err != nil {
		return err
	}
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Comment deleted",
		slog.Any("commentID", commentID), slog.Int64("removed", removed))

	return nil
}
