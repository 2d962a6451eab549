package repository

import (
	"context"
	"time"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsRepository runs read-only rollups over the event logs. It never reads the
// denormalized campaign counters.
type AnalyticsRepository interface {
	// CountEvents counts each event kind of the campaign created in [from, to).
	CountEvents(ctx context.Context, campaignID uuid.UUID, from, to time.Time) (entity.EventCounts, error)

	// DailyEventCounts groups the campaign's events in [from, to) by calendar day in tz and kind.
	DailyEventCounts(ctx context.Context, campaignID uuid.UUID, from, to time.Time, tz string) ([]entity.DayEventCount, error)

	// CityCounts groups the campaign's impressions or clicks by recorded city.
	CityCounts(ctx context.Context, campaignID uuid.UUID, kind entity.EventKind) (map[string]int64, error)

	// VendorActivity sums impressions and clicks in [from, to) per owning vendor.
	VendorActivity(ctx context.Context, from, to time.Time) ([]entity.VendorActivity, error)
}
