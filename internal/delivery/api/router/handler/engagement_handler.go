package handler

import (
	"log/slog"
	"net/http"

	"adreach/internal/delivery/api/response"
	"adreach/internal/domain/entity"
	"adreach/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// EngagementHandlerParams holds dependencies for EngagementHandler, injected by Fx.
type EngagementHandlerParams struct {
	fx.In

	EngagementUC usecase.EngagementUsecase
	Logger       *slog.Logger
}

// EngagementHandler records reactions, shares, impressions, clicks and conversions
type EngagementHandler struct {
	engagementUC usecase.EngagementUsecase
	logger       *slog.Logger
}

// NewEngagementHandler is the constructor for EngagementHandler
func NewEngagementHandler(params EngagementHandlerParams) *EngagementHandler {
	return &EngagementHandler{
		engagementUC: params.EngagementUC,
		logger:       params.Logger,
	}
}

// EventRequest is the optional context sent with an impression or click
type EventRequest struct {
	Location   *entity.EventLocation `json:"location"`
	DeviceType string                `json:"device_type" validate:"max=50"`
}

// ConversionRequest is the optional payload of a conversion
type ConversionRequest struct {
	Amount   *decimal.Decimal `json:"amount"`
	Type     string           `json:"type" validate:"max=50"`
	Metadata map[string]any   `json:"metadata"`
}

// Toggle returns a handler flipping the caller's reaction of kind
func (h *EngagementHandler) Toggle(kind entity.ReactionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := currentUser(c)
		if !ok {
			return invalidToken(c)
		}
		campaignID, ok := parseID(c, "id")
		if !ok {
			return invalidID(c, "campaign")
		}

		result, err := h.engagementUC.ToggleReaction(c.Request().Context(), kind, campaignID, userID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, result)
	}
}

// Share records a share of the campaign
func (h *EngagementHandler) Share(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}

	result, err := h.engagementUC.Share(c.Request().Context(), campaignID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Impression records a deduplicated impression
func (h *EngagementHandler) Impression(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}
	meta, err := h.eventMeta(c)
	if err != nil {
		return err
	}
	if meta == nil {
		return nil
	}

	result, err := h.engagementUC.RecordImpression(c.Request().Context(), campaignID, userID, *meta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Click records a click and charges the campaign
func (h *EngagementHandler) Click(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}
	meta, err := h.eventMeta(c)
	if err != nil {
		return err
	}
	if meta == nil {
		return nil
	}

	result, err := h.engagementUC.RecordClick(c.Request().Context(), campaignID, userID, *meta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Conversion records a vendor defined goal
func (h *EngagementHandler) Conversion(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}

	var req ConversionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid conversion input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	conversion, err := h.engagementUC.RecordConversion(c.Request().Context(), campaignID, userID, usecase.ConversionInput{
		Amount:   req.Amount,
		Type:     req.Type,
		Metadata: req.Metadata,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, conversion)
}

// Status returns the caller's toggles on the campaign
func (h *EngagementHandler) Status(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}

	flags, err := h.engagementUC.GetEngagementStatus(c.Request().Context(), campaignID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, flags)
}

// eventMeta binds the optional event body. A nil meta means the 400 was already written.
func (h *EngagementHandler) eventMeta(c echo.Context) (*entity.EventMeta, error) {
	var req EventRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return nil, response.BindingError(c, "INVALID_INPUT", "Invalid event input")
		}
		if err := c.Validate(&req); err != nil {
			return nil, response.ValidationError(c, err)
		}
	}

	return &entity.EventMeta{
		Location:   req.Location,
		DeviceType: req.DeviceType,
		ClientIP:   c.RealIP(),
	}, nil
}
