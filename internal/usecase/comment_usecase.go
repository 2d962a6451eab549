package usecase

import (
	"context"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput defines a new comment or reply.
type CreateCommentInput struct {
	Content  string
	ParentID *uuid.UUID
}

// CommentUsecase manages campaign comments.
type CommentUsecase interface {
	Create(ctx context.Context, campaignID, userID uuid.UUID, input CreateCommentInput) (*entity.Comment, error)
	// List returns top-level comments newest first, each with its replies oldest first.
	List(ctx context.Context, campaignID uuid.UUID) ([]*entity.Comment, error)
	// Delete removes a comment and its replies. Allowed for the author and the campaign owner.
	Delete(ctx context.Context, userID, commentID uuid.UUID) error
}
