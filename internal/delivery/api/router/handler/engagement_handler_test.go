package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	mockusecase "adreach/internal/mocks/usecase"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEngagementHandler(uc usecase.EngagementUsecase) *EngagementHandler {
	return NewEngagementHandler(EngagementHandlerParams{EngagementUC: uc, Logger: slog.New(slog.DiscardHandler)})
}

func TestEngagementHandler_Toggle(t *testing.T) {
	userID, campaignID := uuid.New(), uuid.New()
	uc := mockusecase.NewMockEngagementUsecase(t)
	uc.EXPECT().ToggleReaction(mock.Anything, entity.ReactionDislike, campaignID, userID).
		Return(&usecase.ToggleResult{Kind: entity.ReactionDislike, Action: "removed_dislike", Active: false}, nil)

	e := newTestEcho(userID, entity.RoleUser)
	e.POST("/campaigns/:id/dislike", newEngagementHandler(uc).Toggle(entity.ReactionDislike))

	rec := doRequest(e, http.MethodPost, "/campaigns/"+campaignID.String()+"/dislike", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got usecase.ToggleResult
	decodeData(t, rec, &got)
	assert.Equal(t, "removed_dislike", got.Action)
	assert.False(t, got.Active)
}

func TestEngagementHandler_ImpressionPassesMeta(t *testing.T) {
	userID, campaignID := uuid.New(), uuid.New()
	uc := mockusecase.NewMockEngagementUsecase(t)
	uc.EXPECT().RecordImpression(mock.Anything, campaignID, userID, mock.MatchedBy(func(meta entity.EventMeta) bool {
		return meta.Location != nil && meta.Location.City == "Pune" && meta.DeviceType == "mobile" && meta.ClientIP == "203.0.113.7"
	})).Return(&usecase.ImpressionResult{Recorded: true}, nil)

	e := newTestEcho(userID)
	e.POST("/campaigns/:id/impression", newEngagementHandler(uc).Impression)

	req := httptest.NewRequest(http.MethodPost, "/campaigns/"+campaignID.String()+"/impression",
		strings.NewReader(`{"location":{"city":"Pune"},"device_type":"mobile"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got usecase.ImpressionResult
	decodeData(t, rec, &got)
	assert.True(t, got.Recorded)
}

func TestEngagementHandler_ClickWithoutBody(t *testing.T) {
	userID, campaignID := uuid.New(), uuid.New()
	uc := mockusecase.NewMockEngagementUsecase(t)
	uc.EXPECT().RecordClick(mock.Anything, campaignID, userID, mock.AnythingOfType("entity.EventMeta")).
		Return(&usecase.ClickResult{
			ClickCount:        3,
			CurrentSpending:   decimal.RequireFromString("1.5"),
			RemainingSpending: decimal.RequireFromString("98.5"),
			Status:            entity.CampaignStatusRunning,
		}, nil)

	e := newTestEcho(userID)
	e.POST("/campaigns/:id/click", newEngagementHandler(uc).Click)

	rec := doRequest(e, http.MethodPost, "/campaigns/"+campaignID.String()+"/click", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"click_count":3`)
}

func TestEngagementHandler_Errors(t *testing.T) {
	userID, campaignID := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		path       string
		setup      func(uc *mockusecase.MockEngagementUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed campaign id",
			path:       "/campaigns/not-a-uuid/share",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name: "campaign not found",
			path: "/campaigns/" + campaignID.String() + "/share",
			setup: func(uc *mockusecase.MockEngagementUsecase) {
				uc.EXPECT().Share(mock.Anything, campaignID, userID).Return(nil, domainerrors.ErrCampaignNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "CAMPAIGN_NOT_FOUND",
		},
		{
			name: "banned user",
			path: "/campaigns/" + campaignID.String() + "/share",
			setup: func(uc *mockusecase.MockEngagementUsecase) {
				uc.EXPECT().Share(mock.Anything, campaignID, userID).Return(nil, domainerrors.ErrUserBanned)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "USER_BANNED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockEngagementUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			e := newTestEcho(userID)
			e.POST("/campaigns/:id/share", newEngagementHandler(uc).Share)

			rec := doRequest(e, http.MethodPost, tt.path, "")
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestEngagementHandler_Conversion(t *testing.T) {
	userID, campaignID := uuid.New(), uuid.New()
	uc := mockusecase.NewMockEngagementUsecase(t)
	uc.EXPECT().RecordConversion(mock.Anything, campaignID, userID, mock.MatchedBy(func(in usecase.ConversionInput) bool {
		return in.Amount != nil && in.Amount.Equal(decimal.NewFromInt(250)) && in.Type == "purchase" && in.Metadata["sku"] == "A1"
	})).Return(&entity.Conversion{ID: uuid.New(), CampaignID: campaignID, UserID: userID, Type: "purchase"}, nil)

	e := newTestEcho(userID)
	e.POST("/campaigns/:id/conversion", newEngagementHandler(uc).Conversion)

	rec := doRequest(e, http.MethodPost, "/campaigns/"+campaignID.String()+"/conversion",
		`{"amount":"250","type":"purchase","metadata":{"sku":"A1"}}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}
