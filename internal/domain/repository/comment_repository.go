package repository

import (
	"context"
	"errors"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment does not exist.
var ErrCommentNotFound = errors.New("comment not found")

// ErrInvalidParent is returned by Create when the parent is missing, in another campaign or itself a reply.
var ErrInvalidParent = errors.New("invalid parent comment")

// CommentRepository persists campaign comments.
type CommentRepository interface {
	// Create inserts a comment. A reply is only inserted when its parent is a top-level
	// comment of the same campaign, otherwise ErrInvalidParent is returned.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a comment.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByCampaign returns every comment of the campaign with author names, unordered.
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Comment, error)

	// DeleteWithReplies removes a comment and its replies and returns the number of rows removed.
	DeleteWithReplies(ctx context.Context, id uuid.UUID) (int64, error)

	// DeleteByCampaign removes every comment of the campaign.
	DeleteByCampaign(ctx context.Context, campaignID uuid.UUID) error
}
