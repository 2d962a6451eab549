package middleware

import (
	"log/slog"

	"adreach/config"
	"adreach/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Install adds the middleware every adreach server runs, in order: panic
// recovery, request id, access log, then metrics when enabled. The metrics
// endpoint is mounted on e as well.
func Install(e *echo.Echo, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) {
	e.Use(echomiddleware.Recover())
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	if cfg.Metrics.Enabled && m != nil {
		e.Use(m.Middleware())
		e.GET(cfg.Metrics.Path, echo.WrapHandler(m.Handler()))
	}
}
