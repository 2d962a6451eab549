package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	mockusecase "adreach/internal/mocks/usecase"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommentHandler(uc usecase.CommentUsecase) *CommentHandler {
	return NewCommentHandler(CommentHandlerParams{CommentUC: uc, Logger: slog.New(slog.DiscardHandler)})
}

func TestCommentHandler_CreateReply(t *testing.T) {
	userID, campaignID, parentID := uuid.New(), uuid.New(), uuid.New()
	uc := mockusecase.NewMockCommentUsecase(t)
	uc.EXPECT().Create(mock.Anything, campaignID, userID, usecase.CreateCommentInput{Content: "Agreed", ParentID: &parentID}).
		Return(nil, domainerrors.ErrReplyDepthExceeded)

	e := newTestEcho(userID)
	e.POST("/campaigns/:id/comments", newCommentHandler(uc).Create)

	rec := doRequest(e, http.MethodPost, "/campaigns/"+campaignID.String()+"/comments",
		`{"content":"Agreed","parent_id":"`+parentID.String()+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "REPLY_DEPTH_EXCEEDED", decodeError(t, rec).Code)
}

func TestCommentHandler_CreateTopLevel(t *testing.T) {
	userID, campaignID := uuid.New(), uuid.New()
	uc := mockusecase.NewMockCommentUsecase(t)
	uc.EXPECT().Create(mock.Anything, campaignID, userID, usecase.CreateCommentInput{Content: "Nice"}).
		Return(&entity.Comment{ID: uuid.New(), CampaignID: campaignID, UserID: userID, Content: "Nice"}, nil)

	e := newTestEcho(userID)
	e.POST("/campaigns/:id/comments", newCommentHandler(uc).Create)

	rec := doRequest(e, http.MethodPost, "/campaigns/"+campaignID.String()+"/comments", `{"content":"Nice"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCommentHandler_CreateEmpty(t *testing.T) {
	e := newTestEcho(uuid.New())
	e.POST("/campaigns/:id/comments", newCommentHandler(mockusecase.NewMockCommentUsecase(t)).Create)

	rec := doRequest(e, http.MethodPost, "/campaigns/"+uuid.NewString()+"/comments", `{"content":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCommentHandler_Delete(t *testing.T) {
	userID, commentID := uuid.New(), uuid.New()
	uc := mockusecase.NewMockCommentUsecase(t)
	uc.EXPECT().Delete(mock.Anything, userID, commentID).Return(domainerrors.ErrForbidden)

	e := newTestEcho(userID)
	e.DELETE("/comments/:id", newCommentHandler(uc).Delete)

	rec := doRequest(e, http.MethodDelete, "/comments/"+commentID.String(), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
