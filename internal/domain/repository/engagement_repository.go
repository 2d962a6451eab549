package repository

import (
	"context"
	"time"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
)

// EngagementRepository writes the engagement event logs.
type EngagementRepository interface {
	// DeleteReaction removes the (campaign, user) row of kind and reports whether one existed.
	DeleteReaction(ctx context.Context, kind entity.ReactionKind, campaignID, userID uuid.UUID) (bool, error)

	// InsertReaction inserts the (campaign, user) row of kind and reports whether it was created.
	// An existing row is left untouched.
	InsertReaction(ctx context.Context, kind entity.ReactionKind, campaignID, userID uuid.UUID) (bool, error)

	// ReactionsFor returns the user's reactions on the given campaigns, one query per reaction table.
	ReactionsFor(ctx context.Context, userID uuid.UUID, campaignIDs []uuid.UUID) (entity.ReactionSet, error)

	// InsertEvent appends a share or click.
	InsertEvent(ctx context.Context, event *entity.EngagementEvent) error

	// InsertImpressionIfAbsent appends an impression unless the user already has one on the
	// campaign newer than since. Concurrent calls for the same pair are serialized.
	InsertImpressionIfAbsent(ctx context.Context, event *entity.EngagementEvent, since time.Time) (bool, error)

	// InsertConversion appends a conversion.
	InsertConversion(ctx context.Context, conversion *entity.Conversion) error

	// DeleteByCampaign removes every event row of the campaign.
	DeleteByCampaign(ctx context.Context, campaignID uuid.UUID) error
}
