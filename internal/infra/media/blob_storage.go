// Package media releases campaign creatives held in a gocloud blob bucket.
package media

import (
	"context"
	"log/slog"

	"adreach/config"
	"adreach/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// Params holds dependencies for MediaStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStorage opens the configured bucket, or a no-op storage when media is not configured.
func NewMediaStorage(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Media bucket not configured, media release disabled")

		return noopStorage{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.StopHook(bucket.Close))

	return NewBlobStorage(bucket, params.Logger), nil
}

// blobStorage implements service.MediaStorage on a blob.Bucket.
type blobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBlobStorage wraps an open bucket.
func NewBlobStorage(bucket *blob.Bucket, logger *slog.Logger) service.MediaStorage {
	return &blobStorage{bucket: bucket, logger: logger}
}

// Delete removes every object in storageIDs. Missing objects are skipped; the first
// other failure is returned after all deletes were attempted.
func (s *blobStorage) Delete(ctx context.Context, storageIDs []string) error {
	var firstErr error
	for _, id := range storageIDs {
		if id == "" {
			continue
		}

		err := s.bucket.Delete(ctx, id)
		switch {
		case err == nil:
		case gcerrors.Code(err) == gcerrors.NotFound:
			s.logger.DebugContext(ctx, "Media object already gone", slog.String("storage_id", id))
		default:
			s.logger.WarnContext(ctx, "Failed to delete media object",
				slog.String("storage_id", id),
				slog.Any("error", err),
			)
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "delete media %s", id)
			}
		}
	}

	return firstErr
}

type noopStorage struct{}

func (noopStorage) Delete(context.Context, []string) error {
	return nil
}
