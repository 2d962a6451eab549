package postgres

import (
	"testing"
	"time"

	"adreach/internal/domain/entity"
	"adreach/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds statements without a live database.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		postgres.New(postgres.Config{DSN: "host=localhost user=adreach dbname=adreach sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true},
	)
	require.NoError(t, err)

	return db
}

// explain renders the statement tx built, with its arguments inlined.
func explain(tx *gorm.DB) string {
	return tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...)
}

func TestFeedQuery(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	age := 30
	base := entity.FeedQuery{
		Point:  entity.GeoPoint{Lat: 52.5, Lon: 13.4},
		Bounds: entity.GeoBounds{MinLat: 52.4, MaxLat: 52.6, MinLon: 13.2, MaxLon: 13.6},
		Now:    now,
		Offset: 20,
		Limit:  10,
	}

	tests := []struct {
		name       string
		age        *int
		wantAge    bool
		wantAgeSQL []string
	}{
		{
			name: "without age targeting",
		},
		{
			name:    "with age targeting",
			age:     &age,
			wantAge: true,
			wantAgeSQL: []string{
				"(targeted_age_min IS NULL OR targeted_age_min <= 30)",
				"(targeted_age_max IS NULL OR targeted_age_max >= 30)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := base
			query.Age = tt.age

			var rows []rankedRow
			tx := feedQuery(newDryRunDB(t), query).Find(&rows)
			require.NoError(t, tx.Error)
			sql := explain(tx)

			assert.Contains(t, sql, "AS distance_km")
			assert.Contains(t, sql, "status = 'RUNNING'")
			assert.Contains(t, sql, "NOT is_flagged")
			assert.Contains(t, sql, "target_latitude BETWEEN 52.4 AND 52.6")
			assert.Contains(t, sql, "target_longitude BETWEEN 13.2 AND 13.6")
			assert.Contains(t, sql, ") AS candidates")
			assert.Contains(t, sql, "distance_km <= target_radius_km")
			assert.Contains(t, sql, "ORDER BY distance_km ASC, id ASC")
			assert.Contains(t, sql, "LIMIT 10 OFFSET 20")
			if tt.wantAge {
				for _, fragment := range tt.wantAgeSQL {
					assert.Contains(t, sql, fragment)
				}
			} else {
				assert.NotContains(t, sql, "targeted_age_min")
				assert.NotContains(t, sql, "targeted_age_max")
			}
		})
	}
}

func TestSearchQuery(t *testing.T) {
	query := entity.SearchQuery{
		Term:   "pizza",
		Now:    time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
		Limit:  20,
		Offset: 0,
	}

	var campaignModels []*model.CampaignModel
	tx := searchQuery(newDryRunDB(t), query).Find(&campaignModels)
	require.NoError(t, tx.Error)
	sql := explain(tx)

	assert.Contains(t, sql, `FROM "campaigns"`)
	assert.Contains(t, sql, "status = 'RUNNING'")
	assert.Contains(t, sql, "(title ILIKE '%pizza%' OR description ILIKE '%pizza%')")
	assert.Contains(t, sql,
		"ORDER BY CASE WHEN title ILIKE 'pizza%' THEN 0 WHEN title ILIKE '%pizza%' THEN 1 ELSE 2 END, created_at DESC, id")
	assert.Contains(t, sql, "LIMIT 20")
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{term: "pizza", want: "pizza"},
		{term: "50%", want: `50\%`},
		{term: "a_b", want: `a\_b`},
		{term: `c:\tmp`, want: `c:\\tmp`},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.term))
		})
	}
}

func TestDebitStatement(t *testing.T) {
	id := uuid.New()
	amount := decimal.RequireFromString("2.5")
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	stmt := debitStatement(newDryRunDB(t), id, amount, now).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "current_spending = current_spending + $1")
	assert.Contains(t, sql, "remaining_spending = remaining_spending - $2")
	assert.Contains(t, sql, "WHERE id = $4")
	assert.Contains(t, sql, "RETURNING budget, current_spending, remaining_spending")
	require.Len(t, stmt.Vars, 4)
	assert.Equal(t, amount, stmt.Vars[0])
	assert.Equal(t, stmt.Vars[0], stmt.Vars[1])
	assert.Equal(t, now, stmt.Vars[2])
	assert.Equal(t, id, stmt.Vars[3])
}
