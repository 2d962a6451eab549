package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"adreach/internal/domain/entity"
	"adreach/internal/domain/service"
	mockservice "adreach/internal/mocks/service"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(m *mockservice.MockTokenService)
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *mockservice.MockTokenService) {
				m.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockservice.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"vendor", "bogus"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			var gotActor usecase.Actor
			e := echo.New()
			e.GET("/protected", func(c echo.Context) error {
				actor, ok := GetActor(c)
				require.True(t, ok)
				gotActor = actor

				return c.NoContent(http.StatusOK)
			}, NewAuthMiddleware(tokenSvc).Authenticate)

			rec := serve(e, tt.header)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, usecase.Actor{UserID: userID, Role: entity.RoleVendor}, gotActor)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		roles      entity.Roles
		wantStatus int
	}{
		{"holds role", entity.Roles{entity.RoleVendor}, http.StatusOK},
		{"admin passes vendor-or-admin", entity.Roles{entity.RoleAdmin}, http.StatusOK},
		{"plain user", entity.Roles{entity.RoleUser}, http.StatusForbidden},
		{"no roles set", nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockservice.NewMockTokenService(t))

			e := echo.New()
			setRoles := func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					if tt.roles != nil {
						c.Set(keyRoles, tt.roles)
					}

					return next(c)
				}
			}
			e.GET("/protected", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, setRoles, m.RequireRole(entity.RoleVendor, entity.RoleAdmin))

			rec := serve(e, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetActor_Admin(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	userID := uuid.New()
	c.Set(keyUserID, userID)
	c.Set(keyRoles, entity.Roles{entity.RoleVendor, entity.RoleAdmin})

	actor, ok := GetActor(c)
	require.True(t, ok)
	assert.True(t, actor.IsAdmin())

	_, ok = GetActor(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder()))
	assert.False(t, ok)
}
