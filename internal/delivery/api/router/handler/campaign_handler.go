package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"adreach/internal/delivery/api/middleware"
	"adreach/internal/delivery/api/response"
	"adreach/internal/domain/entity"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CampaignHandlerParams holds dependencies for CampaignHandler, injected by Fx.
type CampaignHandlerParams struct {
	fx.In

	CampaignUC usecase.CampaignUsecase
	Logger     *slog.Logger
}

// CampaignHandler holds dependencies for campaign management handlers
type CampaignHandler struct {
	campaignUC usecase.CampaignUsecase
	logger     *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler
func NewCampaignHandler(params CampaignHandlerParams) *CampaignHandler {
	return &CampaignHandler{
		campaignUC: params.CampaignUC,
		logger:     params.Logger,
	}
}

// MediaRequest is one uploaded creative
type MediaRequest struct {
	Type      entity.MediaType `json:"type" validate:"required,oneof=image video"`
	URL       string           `json:"url" validate:"required,url"`
	StorageID string           `json:"storage_id"`
}

// CreateCampaignRequest represents the request body for creating a campaign
type CreateCampaignRequest struct {
	Title            string                  `json:"title" validate:"required,max=200"`
	Description      string                  `json:"description" validate:"max=5000"`
	Media            []MediaRequest          `json:"media" validate:"dive"`
	TargetedLocation entity.TargetedLocation `json:"targeted_location"`
	Latitude         *float64                `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude        *float64                `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	RadiusKm         *float64                `json:"radius_km" validate:"omitempty,gt=0"`
	AgeMin           *int                    `json:"age_min"`
	AgeMax           *int                    `json:"age_max"`
	Budget           decimal.Decimal         `json:"budget" validate:"required"`
	StartDate        time.Time               `json:"start_date" validate:"required"`
	EndDate          time.Time               `json:"end_date" validate:"required"`
}

// UpdateCampaignRequest is a partial update; omitted fields are left unchanged
type UpdateCampaignRequest struct {
	Title            *string                  `json:"title" validate:"omitempty,min=1,max=200"`
	Description      *string                  `json:"description" validate:"omitempty,max=5000"`
	Media            *[]MediaRequest          `json:"media" validate:"omitempty,dive"`
	TargetedLocation *entity.TargetedLocation `json:"targeted_location"`
	Latitude         *float64                 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude        *float64                 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	RadiusKm         *float64                 `json:"radius_km" validate:"omitempty,gt=0"`
	AgeMin           *int                     `json:"age_min"`
	AgeMax           *int                     `json:"age_max"`
	Budget           *decimal.Decimal         `json:"budget"`
	StartDate        *time.Time               `json:"start_date"`
	EndDate          *time.Time               `json:"end_date"`
}

// ConfirmPaymentRequest is the payment collaborator's callback body
type ConfirmPaymentRequest struct {
	CampaignID       string `json:"campaign_id" validate:"required,uuid"`
	GatewayOrderID   string `json:"gateway_order_id" validate:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" validate:"required"`
	GatewaySignature string `json:"gateway_signature"`
}

func toMedia(in []MediaRequest) []entity.CampaignMedia {
	media := make([]entity.CampaignMedia, 0, len(in))
	for _, m := range in {
		media = append(media, entity.CampaignMedia{Type: m.Type, URL: m.URL, StorageID: m.StorageID})
	}

	return media
}

// Create handles campaign creation by a vendor
func (h *CampaignHandler) Create(c echo.Context) error {
	vendorID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	var req CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	campaign, err := h.campaignUC.Create(c.Request().Context(), vendorID, usecase.CreateCampaignInput{
		Title:            req.Title,
		Description:      req.Description,
		Media:            toMedia(req.Media),
		TargetedLocation: req.TargetedLocation,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		RadiusKm:         req.RadiusKm,
		AgeMin:           req.AgeMin,
		AgeMax:           req.AgeMax,
		Budget:           req.Budget,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, campaign)
}

// Update applies a partial update to the vendor's campaign
func (h *CampaignHandler) Update(c echo.Context) error {
	vendorID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}

	var req UpdateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := usecase.UpdateCampaignInput{
		Title:            req.Title,
		Description:      req.Description,
		TargetedLocation: req.TargetedLocation,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		RadiusKm:         req.RadiusKm,
		AgeMin:           req.AgeMin,
		AgeMax:           req.AgeMax,
		Budget:           req.Budget,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	}
	if req.Media != nil {
		media := toMedia(*req.Media)
		input.Media = &media
	}

	campaign, err := h.campaignUC.Update(c.Request().Context(), vendorID, campaignID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, campaign)
}

// Get returns a campaign with its comments and location breakdown
func (h *CampaignHandler) Get(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return invalidToken(c)
	}
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}

	details, err := h.campaignUC.Get(c.Request().Context(), actor, campaignID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details)
}

// ListMine lists the vendor's campaigns, optionally filtered by ?status
func (h *CampaignHandler) ListMine(c echo.Context) error {
	vendorID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	var status *entity.CampaignStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.CampaignStatus(raw)
		if !s.IsValid() {
			return response.BadRequest(c, "INVALID_STATUS", "status must be PAUSED, RUNNING or COMPLETED")
		}
		status = &s
	}

	campaigns, err := h.campaignUC.ListVendorCampaigns(c.Request().Context(), vendorID, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, campaigns)
}

// Stats returns the vendor's campaigns with summary totals
func (h *CampaignHandler) Stats(c echo.Context) error {
	vendorID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	stats, err := h.campaignUC.VendorStats(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// Pause stops a running campaign
func (h *CampaignHandler) Pause(c echo.Context) error {
	return h.transition(c, h.campaignUC.Pause)
}

// Resume restarts a paused, paid campaign
func (h *CampaignHandler) Resume(c echo.Context) error {
	return h.transition(c, h.campaignUC.Resume)
}

func (h *CampaignHandler) transition(c echo.Context, apply func(ctx context.Context, vendorID, campaignID uuid.UUID) (*entity.Campaign, error)) error {
	vendorID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}

	campaign, err := apply(c.Request().Context(), vendorID, campaignID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, campaign)
}

// Delete removes a campaign and everything recorded against it
func (h *CampaignHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return invalidToken(c)
	}
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}

	if err := h.campaignUC.Delete(c.Request().Context(), actor, campaignID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ShareQR renders the campaign's share QR code as PNG
func (h *CampaignHandler) ShareQR(c echo.Context) error {
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}

	png, err := h.campaignUC.ShareQR(c.Request().Context(), campaignID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ConfirmPayment activates a paid campaign
func (h *CampaignHandler) ConfirmPayment(c echo.Context) error {
	var req ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment confirmation")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}
	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return invalidID(c, "campaign")
	}

	campaign, err := h.campaignUC.ConfirmPayment(c.Request().Context(), usecase.PaymentConfirmation{
		CampaignID:       campaignID,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		GatewaySignature: req.GatewaySignature,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, campaign)
}

// ListTransactions pages through the vendor's payment history
func (h *CampaignHandler) ListTransactions(c echo.Context) error {
	vendorID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	page, err := h.campaignUC.ListTransactions(c.Request().Context(), vendorID, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// TransactionStats summarizes the vendor's payments
func (h *CampaignHandler) TransactionStats(c echo.Context) error {
	vendorID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	stats, err := h.campaignUC.TransactionStats(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
