package notification

import (
	"context"
	"log/slog"

	"adreach/config"
	"adreach/internal/domain/service"

	"github.com/pkg/errors"
)

// NewPushSender picks FCM when Firebase is configured and a log-only sender otherwise.
func NewPushSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.Firebase == nil {
		logger.Info("Firebase not configured, pushes are logged only")

		return NewLogOnlySender(logger), nil
	}

	sender, err := NewFCMSender(ctx, cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "create FCM sender")
	}

	return sender, nil
}
