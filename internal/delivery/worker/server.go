package worker

import (
	"context"
	"log/slog"
	"net/http"

	"adreach/config"
	"adreach/internal/delivery"
	apihandler "adreach/internal/delivery/api/router/handler"
	"adreach/internal/delivery/middleware"
	"adreach/internal/delivery/worker/handler"
	"adreach/internal/domain/lifecycle"
	"adreach/internal/errors"
	"adreach/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	Metrics       *metrics.Metrics
	PushHandler   *handler.PushHandler
	HealthHandler *apihandler.HealthHandler
}

// NewServer creates the notification worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Install(e, params.Cfg, params.Logger, params.Metrics)
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.GET("/health", params.HealthHandler.HealthCheck)
	e.POST("/push", params.PushHandler.HandlePush)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := delivery.ListenAddr(s.cfg.HTTP.Port)
	s.logger.InfoContext(ctx, "Starting notification worker", slog.String("addr", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down notification worker")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
