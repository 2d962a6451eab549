package delivery

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
)

// StartAll serves every delivery in its own goroutine. The first one that
// fails shuts the app down so all OnStop hooks run.
func StartAll(ctx context.Context, deliveries []Delivery, shutdowner fx.Shutdowner, logger *slog.Logger) {
	for _, d := range deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}
			logger.Error("delivery stopped with error", slog.Any("error", err))
			if shutdownErr := shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
				logger.Error("graceful shutdown failed", slog.Any("error", shutdownErr))
			}
		}()
	}
}
