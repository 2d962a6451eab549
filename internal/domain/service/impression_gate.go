package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ImpressionGate is a fast pre-check for impression dedup. It only filters obvious
// repeats; the store keeps the final say.
type ImpressionGate interface {
	// Acquire claims the (campaign, user) slot for window. false means an impression
	// was already claimed within the window.
	Acquire(ctx context.Context, campaignID, userID uuid.UUID, window time.Duration) (bool, error)

	// Release gives a claimed slot back, used when recording failed.
	Release(ctx context.Context, campaignID, userID uuid.UUID) error
}
