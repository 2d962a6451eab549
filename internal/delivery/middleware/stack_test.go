package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"adreach/config"
	"adreach/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestInstall(t *testing.T) {
	tests := []struct {
		name        string
		enabled     bool
		wantMetrics int
	}{
		{name: "metrics enabled", enabled: true, wantMetrics: http.StatusOK},
		{name: "metrics disabled", enabled: false, wantMetrics: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.Metrics.Enabled = tt.enabled

			e := echo.New()
			Install(e, cfg, slog.New(slog.DiscardHandler), metrics.New())
			e.GET("/panic", func(echo.Context) error { panic("boom") })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

			rec = httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, cfg.Metrics.Path, nil))
			assert.Equal(t, tt.wantMetrics, rec.Code)
		})
	}
}
