package handler

import (
	"log/slog"
	"net/http"

	"adreach/internal/delivery/api/response"
	"adreach/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC     usecase.AdminUsecase
	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AdminHandler serves moderation and platform reports
type AdminHandler struct {
	adminUC     usecase.AdminUsecase
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:     params.AdminUC,
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// FlagRequest toggles a moderation flag
type FlagRequest struct {
	Flagged *bool `json:"flagged" validate:"required"`
}

// BanRequest bans or reinstates a user
type BanRequest struct {
	Banned *bool `json:"banned" validate:"required"`
}

// Overview returns user and campaign totals
func (h *AdminHandler) Overview(c echo.Context) error {
	overview, err := h.analyticsUC.AdminOverview(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview)
}

// Revenue returns the platform revenue overview
func (h *AdminHandler) Revenue(c echo.Context) error {
	overview, err := h.analyticsUC.PlatformRevenueOverview(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview)
}

// ListCampaigns pages through all campaigns
func (h *AdminHandler) ListCampaigns(c echo.Context) error {
	page, err := h.adminUC.ListCampaigns(c.Request().Context(), pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// FlagCampaign hides or unhides a campaign
func (h *AdminHandler) FlagCampaign(c echo.Context) error {
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}

	var req FlagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid flag input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.adminUC.FlagCampaign(c.Request().Context(), campaignID, *req.Flagged); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"flagged": *req.Flagged})
}

// BanUser bans or reinstates a user
func (h *AdminHandler) BanUser(c echo.Context) error {
	userID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "user")
	}

	var req BanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ban input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.adminUC.BanUser(c.Request().Context(), userID, *req.Banned); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"banned": *req.Banned})
}

// CampaignAnalytics returns today's and the trailing week's metrics of any campaign
func (h *AdminHandler) CampaignAnalytics(c echo.Context) error {
	campaignID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "campaign")
	}

	analytics, err := h.adminUC.CampaignAnalytics(c.Request().Context(), campaignID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analytics)
}
