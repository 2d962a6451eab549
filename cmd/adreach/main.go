package main

import (
	"context"
	"log/slog"

	"adreach/config"
	"adreach/internal/delivery"
	"adreach/internal/delivery/api"
	"adreach/internal/delivery/api/middleware"
	"adreach/internal/delivery/api/router/handler"
	"adreach/internal/delivery/scheduler"
	"adreach/internal/domain/service"
	"adreach/internal/infra/auth"
	"adreach/internal/infra/cache/redis"
	"adreach/internal/infra/geocoding"
	"adreach/internal/infra/geoip"
	logs "adreach/internal/infra/log"
	"adreach/internal/infra/media"
	"adreach/internal/infra/metrics"
	"adreach/internal/infra/notification"
	"adreach/internal/infra/persistence/postgres"
	"adreach/internal/infra/pubsub"
	"adreach/internal/infra/qrcode"
	"adreach/internal/infra/report"
	"adreach/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		pubsub.Module,
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewCampaignRepository,
			postgres.NewEngagementRepository,
			postgres.NewCommentRepository,
			postgres.NewPaymentTransactionRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			postgres.NewNotificationSettingsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			redis.NewImpressionGate,
			geocoding.NewNominatimGeocoder,
			geoip.NewIPLocator,
			media.NewMediaStorage,
			metrics.NewEngagementMetrics,
			report.NewExcelExporter,
			notification.NewPushSender,
			newQRCodeService,
		),
	)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCampaignService,
			impl.NewEngagementService,
			impl.NewFeedService,
			impl.NewCommentService,
			impl.NewAnalyticsService,
			impl.NewAdminService,
			impl.NewMaintenanceService,
			impl.NewDeviceService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(postgres.NewPinger, fx.As(new(handler.Pinger))),
			handler.NewHealthHandler,
			handler.NewFeedHandler,
			handler.NewCampaignHandler,
			handler.NewEngagementHandler,
			handler.NewCommentHandler,
			handler.NewAnalyticsHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, logger *slog.Logger, params startServerParams) {
	delivery.StartAll(ctx, params.Deliveries, params.Shutdowner, logger)
}
