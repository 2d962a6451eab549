// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrCampaignNotFound is returned when a campaign does not exist.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository persists campaigns. Every counter, budget and status mutation is a
// single store-level statement; none of them reads the row first.
type CampaignRepository interface {
	// Create persists a new campaign.
	Create(ctx context.Context, campaign *entity.Campaign) error

	// FindByID retrieves a campaign by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// FindByIDForUpdate retrieves a campaign and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// Update writes the vendor editable fields (content, targeting, dates, budget while unpaid).
	Update(ctx context.Context, campaign *entity.Campaign) error

	// Delete removes the campaign row.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByVendor returns a vendor's campaigns, newest first, optionally filtered by status.
	ListByVendor(ctx context.Context, vendorID uuid.UUID, status *entity.CampaignStatus) ([]*entity.Campaign, error)

	// List returns a page of all campaigns, newest first, and the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.Campaign, int64, error)

	// ListIDsByStatus returns the ids of campaigns in status.
	ListIDsByStatus(ctx context.Context, status entity.CampaignStatus) ([]uuid.UUID, error)

	// ListRunningEndingBetween returns RUNNING campaigns whose end date falls in [from, to].
	ListRunningEndingBetween(ctx context.Context, from, to time.Time) ([]*entity.Campaign, error)

	// IncrementCounter adds delta to counter and returns the new value. Impression and
	// click changes also recompute ctr in the same statement.
	IncrementCounter(ctx context.Context, id uuid.UUID, counter entity.CampaignCounter, delta int64) (int64, error)

	// RecomputeAllCTR rewrites ctr from the stored counters for every campaign.
	RecomputeAllCTR(ctx context.Context) (int64, error)

	// Debit moves amount from remaining to current spending in one statement.
	Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.BudgetSnapshot, error)

	// TransitionStatus sets status to `to` only if it currently is `from`.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.CampaignStatus) (bool, error)

	// MarkPaid moves a PAUSED+PENDING campaign to RUNNING+SUCCESS.
	MarkPaid(ctx context.Context, id uuid.UUID, gatewayPaymentID string) (bool, error)

	// MarkLowBudgetAlerted records the alert time unless one was already recorded.
	MarkLowBudgetAlerted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	// SetFlagged sets the moderation flag.
	SetFlagged(ctx context.Context, id uuid.UUID, flagged bool) error

	// Feed returns eligible campaigns around the query point, nearest first.
	Feed(ctx context.Context, query entity.FeedQuery) ([]*entity.RankedCampaign, error)

	// Search returns running campaigns matching the term in title prefix, title, then recency order.
	Search(ctx context.Context, query entity.SearchQuery) ([]*entity.RankedCampaign, error)

	// CountByStatus counts campaigns per status.
	CountByStatus(ctx context.Context) (map[entity.CampaignStatus]int64, error)

	// TopByImpressions returns paid campaigns with the most impressions.
	TopByImpressions(ctx context.Context, limit int) ([]entity.TopCampaign, error)
}
