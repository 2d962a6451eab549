package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"adreach/internal/delivery/api/middleware"
	"adreach/internal/delivery/api/response"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultWindowDays = 7
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler serves campaign rollups
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// campaignScope reads the caller and the campaign of an analytics route.
// Its errors are rendered by the central error handler.
func campaignScope(c echo.Context) (usecase.Actor, uuid.UUID, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return usecase.Actor{}, uuid.Nil, domainerrors.ErrUnauthorized
	}
	campaignID, ok := parseID(c, "id")
	if !ok {
		return usecase.Actor{}, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid campaign ID")
	}

	return actor, campaignID, nil
}

// Today returns today's metrics
func (h *AnalyticsHandler) Today(c echo.Context) error {
	actor, campaignID, err := campaignScope(c)
	if err != nil {
		return err
	}

	stats, err := h.analyticsUC.TodayStats(c.Request().Context(), actor, campaignID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// Window returns per-day metrics of the trailing ?days (7, 30 or 90)
func (h *AnalyticsHandler) Window(c echo.Context) error {
	actor, campaignID, err := campaignScope(c)
	if err != nil {
		return err
	}
	days, ok := daysQuery(c, defaultWindowDays)
	if !ok {
		return response.BadRequest(c, "INVALID_WINDOW", "days must be a number")
	}

	stats, err := h.analyticsUC.WindowStats(c.Request().Context(), actor, campaignID, days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// Daily returns the impressions and clicks chart per day
func (h *AnalyticsHandler) Daily(c echo.Context) error {
	actor, campaignID, err := campaignScope(c)
	if err != nil {
		return err
	}
	days, ok := daysQuery(c, defaultWindowDays)
	if !ok {
		return response.BadRequest(c, "INVALID_WINDOW", "days must be a number")
	}

	points, err := h.analyticsUC.DailyChart(c.Request().Context(), actor, campaignID, days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points)
}

// Weekday returns the impressions and clicks chart per weekday
func (h *AnalyticsHandler) Weekday(c echo.Context) error {
	actor, campaignID, err := campaignScope(c)
	if err != nil {
		return err
	}
	days, ok := daysQuery(c, defaultWindowDays)
	if !ok {
		return response.BadRequest(c, "INVALID_WINDOW", "days must be a number")
	}

	points, err := h.analyticsUC.DayOfWeekChart(c.Request().Context(), actor, campaignID, days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points)
}

// Locations returns impressions and clicks per city
func (h *AnalyticsHandler) Locations(c echo.Context) error {
	actor, campaignID, err := campaignScope(c)
	if err != nil {
		return err
	}

	stats, err := h.analyticsUC.LocationStats(c.Request().Context(), actor, campaignID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// Export downloads the window stats as an xlsx workbook
func (h *AnalyticsHandler) Export(c echo.Context) error {
	actor, campaignID, err := campaignScope(c)
	if err != nil {
		return err
	}
	days, ok := daysQuery(c, defaultWindowDays)
	if !ok {
		return response.BadRequest(c, "INVALID_WINDOW", "days must be a number")
	}

	workbook, err := h.analyticsUC.ExportWindowStats(c.Request().Context(), actor, campaignID, days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filename := fmt.Sprintf("campaign-%s-%dd.xlsx", campaignID, days)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, xlsxContentType, workbook)
}
