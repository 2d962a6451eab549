package handler

import (
	"log/slog"
	"net/http"

	"adreach/internal/delivery/api/response"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler serves campaign comments
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// CreateCommentRequest represents a new comment or a reply
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,max=2000"`
	ParentID string `json:"parent_id" validate:"omitempty,uuid"`
}

// Create posts a comment on the campaign
func (h *CommentHandler) Create(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := usecase.CreateCommentInput{Content: req.Content}
	if req.ParentID != "" {
		parentID, err := uuid.Parse(req.ParentID)
		if err != nil {
			return invalidID(c, "parent")
		}
		input.ParentID = &parentID
	}

	comment, err := h.commentUC.Create(c.Request().Context(), campaignID, userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, comment)
}

// List returns the campaign's comment tree
func (h *CommentHandler) List(c echo.Context) error {
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}

	comments, err := h.commentUC.List(c.Request().Context(), campaignID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comments)
}

// Delete removes a comment with its replies
func (h *CommentHandler) Delete(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}
	commentID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "comment")
	}

	if err := h.commentUC.Delete(c.Request().Context(), userID, commentID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
