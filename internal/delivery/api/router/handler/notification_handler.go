package handler

import (
	"log/slog"
	"net/http"

	"adreach/internal/delivery/api/response"
	"adreach/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the inbox and notification preferences
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// UpdateSettingsRequest is a partial settings update
type UpdateSettingsRequest struct {
	CampaignPerformanceUpdates *bool `json:"campaign_performance_updates"`
	LiveCampaignUpdates        *bool `json:"live_campaign_updates"`
	LowBudgetAlert             *bool `json:"low_budget_alert"`
	PaymentTransactionUpdates  *bool `json:"payment_transaction_updates"`
	NewCommentNotification     *bool `json:"new_comment_notification"`
	PushNotifications          *bool `json:"push_notifications"`
}

// GetSettings returns the caller's notification preferences
func (h *NotificationHandler) GetSettings(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	settings, err := h.notificationUC.GetSettings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateSettings changes the given preferences
func (h *NotificationHandler) UpdateSettings(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	settings, err := h.notificationUC.UpdateSettings(c.Request().Context(), userID, usecase.UpdateSettingsInput{
		CampaignPerformanceUpdates: req.CampaignPerformanceUpdates,
		LiveCampaignUpdates:        req.LiveCampaignUpdates,
		LowBudgetAlert:             req.LowBudgetAlert,
		PaymentTransactionUpdates:  req.PaymentTransactionUpdates,
		NewCommentNotification:     req.NewCommentNotification,
		PushNotifications:          req.PushNotifications,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// List pages through the caller's inbox
func (h *NotificationHandler) List(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	page, err := h.notificationUC.List(c.Request().Context(), userID, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// MarkRead marks one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}
	notificationID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "notification")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}
