package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	mockusecase "adreach/internal/mocks/usecase"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCampaignHandler(uc usecase.CampaignUsecase) *CampaignHandler {
	return NewCampaignHandler(CampaignHandlerParams{CampaignUC: uc, Logger: slog.New(slog.DiscardHandler)})
}

func TestCampaignHandler_Create(t *testing.T) {
	vendorID := uuid.New()
	uc := mockusecase.NewMockCampaignUsecase(t)
	uc.EXPECT().Create(mock.Anything, vendorID, mock.MatchedBy(func(in usecase.CreateCampaignInput) bool {
		return in.Title == "Monsoon sale" &&
			in.Budget.Equal(decimal.NewFromInt(500)) &&
			in.TargetedLocation.City == "Mumbai" &&
			len(in.Media) == 1 && in.Media[0].StorageID == "media/1.png" &&
			in.StartDate.Equal(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	})).Return(&entity.Campaign{ID: uuid.New(), VendorID: vendorID, Title: "Monsoon sale"}, nil)

	e := newTestEcho(vendorID, entity.RoleVendor)
	e.POST("/campaigns", newCampaignHandler(uc).Create)

	rec := doRequest(e, http.MethodPost, "/campaigns", `{
		"title": "Monsoon sale",
		"media": [{"type": "image", "url": "https://cdn.example.com/1.png", "storage_id": "media/1.png"}],
		"targeted_location": {"city": "Mumbai"},
		"budget": "500",
		"start_date": "2026-07-01T00:00:00Z",
		"end_date": "2026-07-31T00:00:00Z"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got entity.Campaign
	decodeData(t, rec, &got)
	assert.Equal(t, vendorID, got.VendorID)
}

func TestCampaignHandler_CreateValidation(t *testing.T) {
	uc := mockusecase.NewMockCampaignUsecase(t)

	e := newTestEcho(uuid.New(), entity.RoleVendor)
	e.POST("/campaigns", newCampaignHandler(uc).Create)

	rec := doRequest(e, http.MethodPost, "/campaigns", `{"budget":"500","media":[{"type":"gif","url":"x"}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	info := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", info.Code)

	details, ok := info.Details.([]any)
	require.True(t, ok)
	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.(map[string]any)["field"].(string))
	}
	assert.Subset(t, fields, []string{"title", "type", "url", "start_date", "end_date"})
}

func TestCampaignHandler_ListMine(t *testing.T) {
	vendorID := uuid.New()

	t.Run("invalid status", func(t *testing.T) {
		e := newTestEcho(vendorID, entity.RoleVendor)
		e.GET("/campaigns/mine", newCampaignHandler(mockusecase.NewMockCampaignUsecase(t)).ListMine)

		rec := doRequest(e, http.MethodGet, "/campaigns/mine?status=DRAFT", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("filters by status", func(t *testing.T) {
		uc := mockusecase.NewMockCampaignUsecase(t)
		running := entity.CampaignStatusRunning
		uc.EXPECT().ListVendorCampaigns(mock.Anything, vendorID, &running).Return([]*entity.Campaign{}, nil)

		e := newTestEcho(vendorID, entity.RoleVendor)
		e.GET("/campaigns/mine", newCampaignHandler(uc).ListMine)

		rec := doRequest(e, http.MethodGet, "/campaigns/mine?status=RUNNING", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCampaignHandler_PauseCompleted(t *testing.T) {
	vendorID, campaignID := uuid.New(), uuid.New()
	uc := mockusecase.NewMockCampaignUsecase(t)
	uc.EXPECT().Pause(mock.Anything, vendorID, campaignID).Return(nil, domainerrors.ErrCampaignCompleted)

	e := newTestEcho(vendorID, entity.RoleVendor)
	e.PUT("/campaigns/:id/pause", newCampaignHandler(uc).Pause)

	rec := doRequest(e, http.MethodPut, "/campaigns/"+campaignID.String()+"/pause", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CAMPAIGN_COMPLETED", decodeError(t, rec).Code)
}

func TestCampaignHandler_DeleteAsAdmin(t *testing.T) {
	adminID, campaignID := uuid.New(), uuid.New()
	uc := mockusecase.NewMockCampaignUsecase(t)
	uc.EXPECT().Delete(mock.Anything, usecase.Actor{UserID: adminID, Role: entity.RoleAdmin}, campaignID).Return(nil)

	e := newTestEcho(adminID, entity.RoleAdmin)
	e.DELETE("/campaigns/:id", newCampaignHandler(uc).Delete)

	rec := doRequest(e, http.MethodDelete, "/campaigns/"+campaignID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCampaignHandler_ShareQR(t *testing.T) {
	campaignID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	uc := mockusecase.NewMockCampaignUsecase(t)
	uc.EXPECT().ShareQR(mock.Anything, campaignID).Return(png, nil)

	e := newTestEcho(uuid.New())
	e.GET("/campaigns/:id/qr", newCampaignHandler(uc).ShareQR)

	rec := doRequest(e, http.MethodGet, "/campaigns/"+campaignID.String()+"/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestCampaignHandler_ConfirmPayment(t *testing.T) {
	campaignID := uuid.New()
	uc := mockusecase.NewMockCampaignUsecase(t)
	uc.EXPECT().ConfirmPayment(mock.Anything, usecase.PaymentConfirmation{
		CampaignID:       campaignID,
		GatewayOrderID:   "order_1",
		GatewayPaymentID: "pay_1",
		GatewaySignature: "sig",
	}).Return(nil, domainerrors.ErrCampaignNotPending)

	e := newTestEcho(uuid.New(), entity.RoleVendor)
	e.POST("/payments/confirm", newCampaignHandler(uc).ConfirmPayment)

	rec := doRequest(e, http.MethodPost, "/payments/confirm",
		`{"campaign_id":"`+campaignID.String()+`","gateway_order_id":"order_1","gateway_payment_id":"pay_1","gateway_signature":"sig"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CAMPAIGN_NOT_PENDING", decodeError(t, rec).Code)
}

func TestCampaignHandler_ListTransactionsPaging(t *testing.T) {
	vendorID := uuid.New()
	uc := mockusecase.NewMockCampaignUsecase(t)
	uc.EXPECT().ListTransactions(mock.Anything, vendorID, usecase.Page{Page: 2, Limit: 5}).
		Return(&usecase.TransactionPage{Page: 2, Limit: 5}, nil)

	e := newTestEcho(vendorID, entity.RoleVendor)
	e.GET("/vendor/transactions", newCampaignHandler(uc).ListTransactions)

	rec := doRequest(e, http.MethodGet, "/vendor/transactions?page=2&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page usecase.TransactionPage
	decodeData(t, rec, &page)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.Limit)
}
