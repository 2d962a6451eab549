package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"adreach/internal/delivery/api/response"
	"adreach/internal/domain/entity"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// tokenTailLen is how much of an FCM token is echoed back to clients.
const tokenTailLen = 8

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves push device registration.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest is the body of POST /devices.
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceResponse never carries the full FCM token.
type DeviceResponse struct {
	ID           uuid.UUID `json:"id"`
	Platform     string    `json:"platform"`
	TokenSuffix  string    `json:"token_suffix"`
	IsActive     bool      `json:"is_active"`
	LastActiveAt time.Time `json:"last_active_at"`
	CreatedAt    time.Time `json:"created_at"`
}

func toDeviceResponse(device *entity.UserDevice) DeviceResponse {
	token := device.FCMToken
	if len(token) > tokenTailLen {
		token = token[len(token)-tokenTailLen:]
	}

	return DeviceResponse{
		ID:           device.ID,
		Platform:     device.Platform,
		TokenSuffix:  token,
		IsActive:     device.IsActive,
		LastActiveAt: device.LastActiveAt,
		CreatedAt:    device.CreatedAt,
	}
}

// RegisterDevice registers or refreshes the caller's FCM token.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	req.Platform = strings.ToLower(strings.TrimSpace(req.Platform))
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.RegisterDeviceInput{
		FCMToken: req.FCMToken,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toDeviceResponse(device))
}

// GetUserDevices lists the caller's active devices.
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]DeviceResponse, 0, len(devices))
	for _, device := range devices {
		views = append(views, toDeviceResponse(device))
	}

	return response.Success(c, http.StatusOK, views)
}

// DeactivateDevice stops pushes to one of the caller's devices.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return invalidToken(c)
	}
	deviceID, ok := parseID(c, "id")
	if !ok {
		return invalidID(c, "device")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
