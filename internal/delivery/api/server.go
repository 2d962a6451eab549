// Package api is the public REST server.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"adreach/config"
	"adreach/internal/delivery"
	apimiddleware "adreach/internal/delivery/api/middleware"
	"adreach/internal/delivery/api/router"
	"adreach/internal/delivery/api/validator"
	"adreach/internal/delivery/middleware"
	"adreach/internal/domain/lifecycle"
	"adreach/internal/errors"
	"adreach/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for the API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	RouterParams router.RouterParams
}

type apiServer struct {
	echo   *echo.Echo
	addr   string
	h2     *http2.Server
	logger *slog.Logger
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	s := &apiServer{
		echo:   newEcho(params),
		addr:   delivery.ListenAddr(params.Cfg.HTTP.Port),
		h2:     &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout},
		logger: params.Logger,
	}
	params.Lc.Append(fx.StopHook(s.stop))

	return s, nil
}

func newEcho(params ServerParams) *echo.Echo {
	cfg := params.Cfg

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	middleware.Install(e, cfg, params.Logger, params.Metrics)
	e.Use(
		echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
			XSSProtection:      "1; mode=block",
			ContentTypeNosniff: "nosniff",
			XFrameOptions:      "DENY",
		}),
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: cfg.HTTP.AllowedOrigins,
			AllowHeaders: []string{
				echo.HeaderAuthorization,
				echo.HeaderContentType,
				echo.HeaderXRequestID,
			},
			ExposeHeaders: []string{echo.HeaderXRequestID},
		}),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

// Serve speaks HTTP/1.1 and cleartext HTTP/2 on the configured port.
func (s *apiServer) Serve(ctx context.Context) error {
	s.logger.InfoContext(ctx, "API server listening", slog.String("addr", s.addr))

	err := s.echo.StartH2CServer(s.addr, s.h2)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
