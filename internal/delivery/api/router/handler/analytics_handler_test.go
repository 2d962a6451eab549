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

func newAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: uc, Logger: slog.New(slog.DiscardHandler)})
}

func TestAnalyticsHandler_Window(t *testing.T) {
	vendorID, campaignID := uuid.New(), uuid.New()
	actor := usecase.Actor{UserID: vendorID, Role: entity.RoleVendor}

	tests := []struct {
		name       string
		query      string
		setup      func(uc *mockusecase.MockAnalyticsUsecase)
		wantStatus int
	}{
		{
			name:  "defaults to seven days",
			query: "",
			setup: func(uc *mockusecase.MockAnalyticsUsecase) {
				uc.EXPECT().WindowStats(mock.Anything, actor, campaignID, 7).Return(&entity.WindowStats{Days: 7}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "thirty days",
			query: "?days=30",
			setup: func(uc *mockusecase.MockAnalyticsUsecase) {
				uc.EXPECT().WindowStats(mock.Anything, actor, campaignID, 30).Return(&entity.WindowStats{Days: 30}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "unsupported window",
			query: "?days=14",
			setup: func(uc *mockusecase.MockAnalyticsUsecase) {
				uc.EXPECT().WindowStats(mock.Anything, actor, campaignID, 14).Return(nil, domainerrors.ErrInvalidWindow)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not a number",
			query:      "?days=week",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockAnalyticsUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			e := newTestEcho(vendorID, entity.RoleVendor)
			e.GET("/campaigns/:id/analytics/window", newAnalyticsHandler(uc).Window)

			rec := doRequest(e, http.MethodGet, "/campaigns/"+campaignID.String()+"/analytics/window"+tt.query, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAnalyticsHandler_Export(t *testing.T) {
	vendorID, campaignID := uuid.New(), uuid.New()
	uc := mockusecase.NewMockAnalyticsUsecase(t)
	uc.EXPECT().ExportWindowStats(mock.Anything, mock.Anything, campaignID, 90).Return([]byte("xlsx"), nil)

	e := newTestEcho(vendorID, entity.RoleVendor)
	e.GET("/campaigns/:id/analytics/export", newAnalyticsHandler(uc).Export)

	rec := doRequest(e, http.MethodGet, "/campaigns/"+campaignID.String()+"/analytics/export?days=90", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "campaign-"+campaignID.String()+"-90d.xlsx")
	assert.Equal(t, "xlsx", rec.Body.String())
}

func TestAnalyticsHandler_ScopeErrors(t *testing.T) {
	uc := mockusecase.NewMockAnalyticsUsecase(t)

	e := newTestEcho(uuid.Nil)
	e.GET("/campaigns/:id/analytics/today", newAnalyticsHandler(uc).Today)
	rec := doRequest(e, http.MethodGet, "/campaigns/"+uuid.NewString()+"/analytics/today", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	e = newTestEcho(uuid.New(), entity.RoleVendor)
	e.GET("/campaigns/:id/analytics/today", newAnalyticsHandler(uc).Today)
	rec = doRequest(e, http.MethodGet, "/campaigns/nope/analytics/today", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}
