package handler

import (
	"log/slog"
	"net/http"

	"adreach/internal/delivery/api/response"
	"adreach/internal/domain/entity"
	"adreach/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	FeedUC usecase.FeedUsecase
	Logger *slog.Logger
}

// FeedHandler serves the geo feed, search and the user's position.
type FeedHandler struct {
	feedUC usecase.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{
		feedUC: params.FeedUC,
		logger: params.Logger,
	}
}

// UpdateLocationRequest is the body of PUT /users/me/location
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// UpdateLocation stores the caller's GPS position
func (h *FeedHandler) UpdateLocation(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	point := entity.GeoPoint{Lat: *req.Latitude, Lon: *req.Longitude}
	if err := h.feedUC.UpdateLocation(c.Request().Context(), userID, point); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, point)
}

// Feed returns the running campaigns targeting the caller's position
func (h *FeedHandler) Feed(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	page, err := h.feedUC.Feed(c.Request().Context(), userID, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Search matches running campaigns by title and description
func (h *FeedHandler) Search(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	page, err := h.feedUC.Search(c.Request().Context(), userID, c.QueryParam("q"), pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}
