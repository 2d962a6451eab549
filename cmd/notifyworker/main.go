// Command notifyworker receives notification events pushed by Pub/Sub (or by
// the API's local publisher) and delivers them to user devices.
package main

import (
	"context"
	"log/slog"

	"adreach/config"
	"adreach/internal/delivery"
	apihandler "adreach/internal/delivery/api/router/handler"
	"adreach/internal/delivery/worker"
	"adreach/internal/delivery/worker/handler"
	logs "adreach/internal/infra/log"
	"adreach/internal/infra/metrics"
	"adreach/internal/infra/notification"
	"adreach/internal/infra/persistence/postgres"
	"adreach/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.New,
		),
		fx.Provide(
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			postgres.NewNotificationSettingsRepository,
			notification.NewPushSender,
			impl.NewNotificationService,
		),
		fx.Provide(
			fx.Annotate(postgres.NewPinger, fx.As(new(apihandler.Pinger))),
			apihandler.NewHealthHandler,
			handler.NewPushHandler,
			fx.Annotate(worker.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		fx.Invoke(fx.Annotate(
			func(ctx context.Context, deliveries []delivery.Delivery, shutdowner fx.Shutdowner, logger *slog.Logger) {
				delivery.StartAll(ctx, deliveries, shutdowner, logger)
			},
			fx.ParamTags(``, `group:"deliveries"`),
		)),
	).Run()
}
