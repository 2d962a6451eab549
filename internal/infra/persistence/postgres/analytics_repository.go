package postgres

import (
	"context"
	"strings"
	"time"

	"adreach/internal/domain/entity"
	"adreach/internal/domain/repository"
	"adreach/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// countedEventTables are the logs rolled up into EventCounts. Table names are only
// ever taken from this list.
var countedEventTables = []struct {
	kind  entity.EventKind
	table string
}{
	{entity.EventImpression, model.TableImpressions},
	{entity.EventClick, model.TableClicks},
	{entity.EventLike, model.TableLikes},
	{entity.EventDislike, model.TableDislikes},
	{entity.EventLove, model.TableLoves},
	{entity.EventComment, model.TableComments},
	{entity.EventShare, model.TableShares},
	{entity.EventSave, model.TableSaves},
}

// analyticsRepository implements the repository.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// unionEvents builds one SELECT per counted table joined by UNION ALL. Each branch
// projects kind plus selectExpr and filters on the campaign and [from, to).
func unionEvents(selectExpr string) string {
	branches := make([]string, 0, len(countedEventTables))
	for _, t := range countedEventTables {
		branches = append(branches,
			"SELECT '"+string(t.kind)+"' AS kind"+selectExpr+" FROM "+t.table+
				" WHERE campaign_id = @campaign AND created_at >= @from AND created_at < @to")
	}

	return strings.Join(branches, " UNION ALL ")
}

// CountEvents counts each event kind of the campaign created in [from, to).
func (repo *analyticsRepository) CountEvents(ctx context.Context, campaignID uuid.UUID, from, to time.Time) (entity.EventCounts, error) {
	var rows []struct {
		Kind  string
		Count int64
	}
	err := repo.db.WithContext(ctx).Raw(
		"SELECT kind, COUNT(*) AS count FROM ("+unionEvents("")+") AS events GROUP BY kind",
		map[string]any{"campaign": campaignID, "from": from, "to": to},
	).Scan(&rows).Error
	if err != nil {
		return entity.EventCounts{}, errors.Wrap(err, "failed to count events")
	}

	var counts entity.EventCounts
	for _, row := range rows {
		counts.Add(entity.EventKind(row.Kind), row.Count)
	}

	return counts, nil
}

// DailyEventCounts groups the campaign's events by calendar day in tz and kind.
func (repo *analyticsRepository) DailyEventCounts(ctx context.Context, campaignID uuid.UUID, from, to time.Time, tz string) ([]entity.DayEventCount, error) {
	var rows []struct {
		Day   string
		Kind  string
		Count int64
	}
	err := repo.db.WithContext(ctx).Raw(
		"SELECT to_char(created_at AT TIME ZONE @tz, 'YYYY-MM-DD') AS day, kind, COUNT(*) AS count FROM ("+
			unionEvents(", created_at")+") AS events GROUP BY day, kind ORDER BY day",
		map[string]any{"campaign": campaignID, "from": from, "to": to, "tz": timezoneOrUTC(tz)},
	).Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count daily events")
	}

	days := make([]entity.DayEventCount, 0, len(rows))
	for _, row := range rows {
		days = append(days, entity.DayEventCount{Day: row.Day, Kind: entity.EventKind(row.Kind), Count: row.Count})
	}

	return days, nil
}

// CityCounts groups the campaign's impressions or clicks by recorded city. Events
// without a city are counted under the empty key.
func (repo *analyticsRepository) CityCounts(ctx context.Context, campaignID uuid.UUID, kind entity.EventKind) (map[string]int64, error) {
	var table string
	switch kind {
	case entity.EventImpression:
		table = model.TableImpressions
	case entity.EventClick:
		table = model.TableClicks
	default:
		return nil, errors.Errorf("event kind %q carries no location", kind)
	}

	var rows []struct {
		City  string
		Count int64
	}
	err := repo.db.WithContext(ctx).
		Table(table).
		Select("COALESCE(city, '') AS city, COUNT(*) AS count").
		Where("campaign_id = ?", campaignID).
		Group("COALESCE(city, '')").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count %s by city", kind)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.City] += row.Count
	}

	return counts, nil
}

// VendorActivity sums impressions and clicks in [from, to) per owning vendor.
func (repo *analyticsRepository) VendorActivity(ctx context.Context, from, to time.Time) ([]entity.VendorActivity, error) {
	var rows []struct {
		VendorID    uuid.UUID
		Impressions int64
		Clicks      int64
	}
	err := repo.db.WithContext(ctx).Raw(`
		SELECT c.vendor_id,
			COUNT(*) FILTER (WHERE e.kind = 'impression') AS impressions,
			COUNT(*) FILTER (WHERE e.kind = 'click') AS clicks
		FROM (
			SELECT 'impression' AS kind, campaign_id FROM `+model.TableImpressions+` WHERE created_at >= @from AND created_at < @to
			UNION ALL
			SELECT 'click' AS kind, campaign_id FROM `+model.TableClicks+` WHERE created_at >= @from AND created_at < @to
		) AS e
		JOIN campaigns c ON c.id = e.campaign_id
		GROUP BY c.vendor_id`,
		map[string]any{"from": from, "to": to},
	).Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum vendor activity")
	}

	activity := make([]entity.VendorActivity, 0, len(rows))
	for _, row := range rows {
		activity = append(activity, entity.VendorActivity{VendorID: row.VendorID, Impressions: row.Impressions, Clicks: row.Clicks})
	}

	return activity, nil
}
