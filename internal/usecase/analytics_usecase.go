package usecase

import (
	"context"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsUsecase computes read-only rollups from the event logs.
// Campaign analytics are visible to the owning vendor and admins.
type AnalyticsUsecase interface {
	TodayStats(ctx context.Context, actor Actor, campaignID uuid.UUID) (*entity.TodayStats, error)
	WindowStats(ctx context.Context, actor Actor, campaignID uuid.UUID, days int) (*entity.WindowStats, error)
	DailyChart(ctx context.Context, actor Actor, campaignID uuid.UUID, days int) ([]entity.ChartPoint, error)
	DayOfWeekChart(ctx context.Context, actor Actor, campaignID uuid.UUID, days int) ([]entity.ChartPoint, error)
	LocationStats(ctx context.Context, actor Actor, campaignID uuid.UUID) ([]entity.LocationStat, error)
	// ExportWindowStats renders WindowStats as an xlsx workbook.
	ExportWindowStats(ctx context.Context, actor Actor, campaignID uuid.UUID, days int) ([]byte, error)

	PlatformRevenueOverview(ctx context.Context) (*entity.RevenueOverview, error)
	AdminOverview(ctx context.Context) (*entity.AdminOverview, error)
}
