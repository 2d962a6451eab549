package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	"adreach/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// counterColumns whitelists the counter columns that may be interpolated into SQL.
var counterColumns = map[entity.CampaignCounter]string{
	entity.CounterLikes:       "like_count",
	entity.CounterDislikes:    "dislike_count",
	entity.CounterLoves:       "love_count",
	entity.CounterComments:    "comment_count",
	entity.CounterShares:      "share_count",
	entity.CounterSaves:       "save_count",
	entity.CounterImpressions: "impression_count",
	entity.CounterClicks:      "click_count",
	entity.CounterConversions: "conversion_count",
}

// ctrExpr computes ctr from the given click and impression expressions, 2 decimals, 0 without impressions.
func ctrExpr(clicks, impressions string) string {
	return fmt.Sprintf("CASE WHEN (%[2]s) > 0 THEN ROUND((%[1]s)::numeric * 100 / (%[2]s), 2) ELSE 0 END", clicks, impressions)
}

// haversineExpr is the great-circle distance in km from (@lat, @lon) to the campaign target.
// It uses entity.EarthRadiusKm, the radius the feed bounding box is built with.
var haversineExpr = fmt.Sprintf(`2 * %f * ASIN(SQRT(
	POWER(SIN(RADIANS(target_latitude - @lat) / 2), 2) +
	COS(RADIANS(@lat)) * COS(RADIANS(target_latitude)) *
	POWER(SIN(RADIANS(target_longitude - @lon) / 2), 2)))`, entity.EarthRadiusKm)

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// Create persists a new campaign.
func (repo *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("gateway order id already used")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("campaign violates a store constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// FindByID retrieves a campaign by id.
func (repo *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a campaign and holds its row lock until the transaction ends.
func (repo *campaignRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *campaignRepository) find(db *gorm.DB, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel

	if err := db.Where("id = ?", id).First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	return toCampaignDomain(&campaignM), nil
}

// Update writes the vendor editable fields. The budget columns only change while the
// payment is still pending, so a payment confirmed in between keeps the paid budget.
func (repo *campaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)
	pending := string(entity.PaymentStatusPending)

	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ?", campaign.ID).
		Updates(map[string]any{
			"title":              campaignM.Title,
			"description":        campaignM.Description,
			"media":              campaignM.Media,
			"targeted_location":  campaignM.TargetedLocation,
			"target_latitude":    campaignM.TargetLatitude,
			"target_longitude":   campaignM.TargetLongitude,
			"target_radius_km":   campaignM.TargetRadiusKm,
			"targeted_age_min":   campaignM.TargetedAgeMin,
			"targeted_age_max":   campaignM.TargetedAgeMax,
			"start_date":         campaignM.StartDate,
			"end_date":           campaignM.EndDate,
			"budget":             gorm.Expr("CASE WHEN payment_status = ? THEN ? ELSE budget END", pending, campaignM.Budget),
			"remaining_spending": gorm.Expr("CASE WHEN payment_status = ? THEN ? ELSE remaining_spending END", pending, campaignM.RemainingSpending),
			"updated_at":         campaign.UpdatedAt,
		})
	if result.Error != nil {
		return wrapWriteError(result.Error, "failed to update campaign")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// Delete removes the campaign row.
func (repo *campaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CampaignModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete campaign")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// ListByVendor returns a vendor's campaigns, newest first.
func (repo *campaignRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID, status *entity.CampaignStatus) ([]*entity.Campaign, error) {
	var campaignModels []*model.CampaignModel

	query := repo.db.WithContext(ctx).Where("vendor_id = ?", vendorID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}
	if err := query.Order("created_at DESC, id").Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vendor campaigns")
	}

	return toCampaignsDomain(campaignModels), nil
}

// List returns a page of all campaigns, newest first, and the total count.
func (repo *campaignRepository) List(ctx context.Context, offset, limit int) ([]*entity.Campaign, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.CampaignModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count campaigns")
	}

	var campaignModels []*model.CampaignModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC, id").
		Offset(offset).
		Limit(limit).
		Find(&campaignModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list campaigns")
	}

	return toCampaignsDomain(campaignModels), total, nil
}

// ListIDsByStatus returns the ids of campaigns in status.
func (repo *campaignRepository) ListIDsByStatus(ctx context.Context, status entity.CampaignStatus) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("status = ?", string(status)).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list campaign ids by status")
	}

	return ids, nil
}

// ListRunningEndingBetween returns RUNNING campaigns whose end date falls in [from, to].
func (repo *campaignRepository) ListRunningEndingBetween(ctx context.Context, from, to time.Time) ([]*entity.Campaign, error) {
	var campaignModels []*model.CampaignModel
	if err := repo.db.WithContext(ctx).
		Where("status = ? AND end_date BETWEEN ? AND ?", string(entity.CampaignStatusRunning), from, to).
		Order("end_date, id").
		Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns ending soon")
	}

	return toCampaignsDomain(campaignModels), nil
}

// IncrementCounter adds delta to one counter in a single statement and returns the new value.
// Impression and click changes recompute ctr from the post-update counts.
func (repo *campaignRepository) IncrementCounter(ctx context.Context, id uuid.UUID, counter entity.CampaignCounter, delta int64) (int64, error) {
	column, ok := counterColumns[counter]
	if !ok {
		return 0, errors.Errorf("unknown campaign counter %q", counter)
	}

	set := fmt.Sprintf("%[1]s = GREATEST(%[1]s + @delta, 0)", column)
	switch counter {
	case entity.CounterImpressions:
		set += ", ctr = " + ctrExpr("click_count", "GREATEST(impression_count + @delta, 0)")
	case entity.CounterClicks:
		set += ", ctr = " + ctrExpr("GREATEST(click_count + @delta, 0)", "impression_count")
	}

	var value int64
	result := repo.db.WithContext(ctx).Raw(
		fmt.Sprintf("UPDATE campaigns SET %s, updated_at = @now WHERE id = @id RETURNING %s", set, column),
		map[string]any{"delta": delta, "id": id, "now": time.Now().UTC()},
	).Scan(&value)
	if result.Error != nil {
		return 0, wrapWriteError(result.Error, "failed to increment campaign counter")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrCampaignNotFound
	}

	return value, nil
}

// RecomputeAllCTR rewrites ctr from the stored counters.
func (repo *campaignRepository) RecomputeAllCTR(ctx context.Context) (int64, error) {
	expr := ctrExpr("click_count", "impression_count")
	result := repo.db.WithContext(ctx).Exec(
		fmt.Sprintf("UPDATE campaigns SET ctr = %s WHERE ctr IS DISTINCT FROM %s", expr, expr),
	)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to recompute ctr")
	}

	return result.RowsAffected, nil
}

type budgetRow struct {
	Budget            decimal.Decimal
	CurrentSpending   decimal.Decimal
	RemainingSpending decimal.Decimal
}

// Debit moves amount from remaining to current spending in one statement.
// Remaining may go negative; the caller decides on exhaustion.
func (repo *campaignRepository) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.BudgetSnapshot, error) {
	var row budgetRow
	result := debitStatement(repo.db.WithContext(ctx), id, amount, time.Now().UTC()).Scan(&row)
	if result.Error != nil {
		return nil, wrapWriteError(result.Error, "failed to debit campaign")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCampaignNotFound
	}

	return &entity.BudgetSnapshot{
		CampaignID:        id,
		Budget:            row.Budget,
		CurrentSpending:   row.CurrentSpending,
		RemainingSpending: row.RemainingSpending,
	}, nil
}

// debitStatement moves the same amount between the two spending columns, keeping
// current_spending + remaining_spending equal to budget.
func debitStatement(db *gorm.DB, id uuid.UUID, amount decimal.Decimal, now time.Time) *gorm.DB {
	return db.Raw(`UPDATE campaigns
		SET current_spending = current_spending + @amount,
		    remaining_spending = remaining_spending - @amount,
		    updated_at = @now
		WHERE id = @id
		RETURNING budget, current_spending, remaining_spending`,
		map[string]any{"amount": amount, "id": id, "now": now},
	)
}

// TransitionStatus sets status to `to` only if it currently is `from`.
func (repo *campaignRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.CampaignStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{"status": string(to), "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return false, wrapWriteError(result.Error, "failed to transition campaign status")
	}

	return result.RowsAffected == 1, nil
}

// MarkPaid moves a PAUSED+PENDING campaign to RUNNING+SUCCESS.
func (repo *campaignRepository) MarkPaid(ctx context.Context, id uuid.UUID, gatewayPaymentID string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ? AND status = ? AND payment_status = ?",
			id, string(entity.CampaignStatusPaused), string(entity.PaymentStatusPending)).
		Updates(map[string]any{
			"status":             string(entity.CampaignStatusRunning),
			"payment_status":     string(entity.PaymentStatusSuccess),
			"gateway_payment_id": gatewayPaymentID,
			"updated_at":         time.Now().UTC(),
		})
	if result.Error != nil {
		return false, wrapWriteError(result.Error, "failed to mark campaign paid")
	}

	return result.RowsAffected == 1, nil
}

// MarkLowBudgetAlerted records the alert time unless one was already recorded.
func (repo *campaignRepository) MarkLowBudgetAlerted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ? AND low_budget_alerted_at IS NULL", id).
		Update("low_budget_alerted_at", at)
	if result.Error != nil {
		return false, wrapWriteError(result.Error, "failed to mark low budget alert")
	}

	return result.RowsAffected == 1, nil
}

// SetFlagged sets the moderation flag.
func (repo *campaignRepository) SetFlagged(ctx context.Context, id uuid.UUID, flagged bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_flagged": flagged, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to flag campaign")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

type rankedRow struct {
	model.CampaignModel `gorm:"embedded"`
	DistanceKm          float64
}

// Feed returns eligible campaigns around the query point, nearest first.
func (repo *campaignRepository) Feed(ctx context.Context, query entity.FeedQuery) ([]*entity.RankedCampaign, error) {
	var rows []rankedRow
	if err := feedQuery(repo.db.WithContext(ctx), query).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query feed")
	}

	ranked := make([]*entity.RankedCampaign, 0, len(rows))
	for i := range rows {
		distance := rows[i].DistanceKm
		ranked = append(ranked, &entity.RankedCampaign{
			Campaign:   toCampaignDomain(&rows[i].CampaignModel),
			DistanceKm: &distance,
		})
	}

	return ranked, nil
}

// feedQuery narrows candidates with the bounding box, then keeps those whose exact
// distance is within their own target radius.
func feedQuery(db *gorm.DB, query entity.FeedQuery) *gorm.DB {
	params := map[string]any{"lat": query.Point.Lat, "lon": query.Point.Lon}

	candidates := db.
		Model(&model.CampaignModel{}).
		Select("campaigns.*, ("+haversineExpr+") AS distance_km", params).
		Where("status = ?", string(entity.CampaignStatusRunning)).
		Where("start_date <= ? AND end_date >= ?", query.Now, query.Now).
		Where("NOT is_flagged").
		Where("target_latitude IS NOT NULL AND target_longitude IS NOT NULL").
		Where("target_latitude BETWEEN ? AND ?", query.Bounds.MinLat, query.Bounds.MaxLat).
		Where("target_longitude BETWEEN ? AND ?", query.Bounds.MinLon, query.Bounds.MaxLon)
	if query.Age != nil {
		candidates = candidates.
			Where("(targeted_age_min IS NULL OR targeted_age_min <= ?)", *query.Age).
			Where("(targeted_age_max IS NULL OR targeted_age_max >= ?)", *query.Age)
	}

	return db.Table("(?) AS candidates", candidates).
		Where("distance_km <= target_radius_km").
		Order("distance_km ASC, id ASC").
		Offset(query.Offset).
		Limit(query.Limit)
}

// Search returns running campaigns matching term: title prefix first, then title, then
// description, newest first within each group.
func (repo *campaignRepository) Search(ctx context.Context, query entity.SearchQuery) ([]*entity.RankedCampaign, error) {
	var campaignModels []*model.CampaignModel
	if err := searchQuery(repo.db.WithContext(ctx), query).Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search campaigns")
	}

	ranked := make([]*entity.RankedCampaign, 0, len(campaignModels))
	for _, campaign := range toCampaignsDomain(campaignModels) {
		ranked = append(ranked, &entity.RankedCampaign{Campaign: campaign})
	}

	return ranked, nil
}

func searchQuery(db *gorm.DB, query entity.SearchQuery) *gorm.DB {
	escaped := escapeLike(query.Term)
	contains := "%" + escaped + "%"
	prefix := escaped + "%"

	return db.Model(&model.CampaignModel{}).
		Where("status = ?", string(entity.CampaignStatusRunning)).
		Where("start_date <= ? AND end_date >= ?", query.Now, query.Now).
		Where("NOT is_flagged").
		Where("(title ILIKE ? OR description ILIKE ?)", contains, contains).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN title ILIKE ? THEN 0 WHEN title ILIKE ? THEN 1 ELSE 2 END, created_at DESC, id",
			Vars:               []any{prefix, contains},
			WithoutParentheses: true,
		}}).
		Offset(query.Offset).
		Limit(query.Limit)
}

// escapeLike makes term match literally inside a LIKE pattern. PostgreSQL's default
// escape character is the backslash.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

// CountByStatus counts campaigns per status.
func (repo *campaignRepository) CountByStatus(ctx context.Context) (map[entity.CampaignStatus]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count campaigns by status")
	}

	counts := make(map[entity.CampaignStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.CampaignStatus(row.Status)] = row.Total
	}

	return counts, nil
}

// TopByImpressions returns paid campaigns with the most impressions.
func (repo *campaignRepository) TopByImpressions(ctx context.Context, limit int) ([]entity.TopCampaign, error) {
	var campaignModels []*model.CampaignModel
	if err := repo.db.WithContext(ctx).
		Select("id, title, impression_count, budget, created_at").
		Where("payment_status = ?", string(entity.PaymentStatusSuccess)).
		Order("impression_count DESC, id").
		Limit(limit).
		Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list top campaigns")
	}

	top := make([]entity.TopCampaign, 0, len(campaignModels))
	for _, c := range campaignModels {
		top = append(top, entity.TopCampaign{
			ID:          c.ID,
			Title:       c.Title,
			Impressions: c.ImpressionCount,
			Budget:      c.Budget,
			CreatedAt:   c.CreatedAt,
		})
	}

	return top, nil
}

func toCampaignsDomain(models []*model.CampaignModel) []*entity.Campaign {
	campaigns := make([]*entity.Campaign, 0, len(models))
	for _, m := range models {
		campaigns = append(campaigns, toCampaignDomain(m))
	}

	return campaigns
}
