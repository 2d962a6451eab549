package service

import "context"

// MediaStorage releases uploaded creatives. Uploads happen before the campaign is created.
type MediaStorage interface {
	// Delete removes the objects with the given storage ids. Missing objects are not an error.
	Delete(ctx context.Context, storageIDs []string) error
}
