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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceHandler(uc usecase.DeviceUsecase) *DeviceHandler {
	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc, Logger: slog.New(slog.DiscardHandler)})
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	userID := uuid.New()
	uc := mockusecase.NewMockDeviceUsecase(t)
	uc.EXPECT().RegisterDevice(mock.Anything, userID, &usecase.RegisterDeviceInput{FCMToken: "fcm-token-0123456789", Platform: "android"}).
		Return(&entity.UserDevice{
			ID:        uuid.New(),
			UserID:    userID,
			FCMToken:  "fcm-token-0123456789",
			Platform:  "android",
			IsActive:  true,
			CreatedAt: time.Now(),
		}, nil)

	e := newTestEcho(userID)
	e.POST("/devices", newDeviceHandler(uc).RegisterDevice)

	rec := doRequest(e, http.MethodPost, "/devices", `{"fcm_token":"fcm-token-0123456789","platform":" Android "}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got DeviceResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "23456789", got.TokenSuffix)
	assert.NotContains(t, rec.Body.String(), "fcm-token-0123456789")
}

func TestDeviceHandler_RegisterDevice_InvalidPlatform(t *testing.T) {
	e := newTestEcho(uuid.New())
	e.POST("/devices", newDeviceHandler(mockusecase.NewMockDeviceUsecase(t)).RegisterDevice)

	rec := doRequest(e, http.MethodPost, "/devices", `{"fcm_token":"t","platform":"blackberry"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	userID, deviceID := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deactivated", wantStatus: http.StatusNoContent},
		{name: "not owned", err: domainerrors.ErrDeviceNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockDeviceUsecase(t)
			uc.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).Return(tt.err)

			e := newTestEcho(userID)
			e.DELETE("/devices/:id", newDeviceHandler(uc).DeactivateDevice)

			rec := doRequest(e, http.MethodDelete, "/devices/"+deviceID.String(), "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
