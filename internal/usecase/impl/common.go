// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "adreach/internal/delivery/context"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	"adreach/internal/errors"
)

// retryOnConflict runs fn and retries it once when the store reports a concurrent write.
// A second conflict is surfaced as a transient error the client may retry.
func retryOnConflict(ctx context.Context, logger *slog.Logger, op string, fn func() error) error {
	err := fn()
	if !errors.Is(err, repository.ErrConflict) {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Retrying after write conflict", slog.String("op", op))
	err = fn()
	if errors.Is(err, repository.ErrConflict) {
		return domainerrors.ErrTransientConflict.WrapMessage(op)
	}

	return err
}

// campaignErr maps repository lookups to the domain taxonomy.
func campaignErr(err error, message string) error {
	if errors.Is(err, repository.ErrCampaignNotFound) {
		return domainerrors.ErrCampaignNotFound
	}

	return errors.Wrap(err, message)
}

// loadLocation resolves a configured IANA zone, falling back to the server zone.
func loadLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}

	return loc
}
