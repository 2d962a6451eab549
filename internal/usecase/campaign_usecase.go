package usecase

import (
	"context"
	"time"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateCampaignInput defines the data required to create a campaign.
// Latitude and Longitude override geocoding when both are set.
type CreateCampaignInput struct {
	Title            string
	Description      string
	Media            []entity.CampaignMedia
	TargetedLocation entity.TargetedLocation
	Latitude         *float64
	Longitude        *float64
	RadiusKm         *float64
	AgeMin           *int
	AgeMax           *int
	Budget           decimal.Decimal
	StartDate        time.Time
	EndDate          time.Time
}

// UpdateCampaignInput is a partial update; nil fields are left unchanged.
type UpdateCampaignInput struct {
	Title            *string
	Description      *string
	Media            *[]entity.CampaignMedia
	TargetedLocation *entity.TargetedLocation
	Latitude         *float64
	Longitude        *float64
	RadiusKm         *float64
	AgeMin           *int
	AgeMax           *int
	Budget           *decimal.Decimal
	StartDate        *time.Time
	EndDate          *time.Time
}

// PaymentConfirmation is the payment collaborator's callback. The signature is verified upstream.
type PaymentConfirmation struct {
	CampaignID       uuid.UUID
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
}

// --- Output DTOs ---

// CampaignDetails is the owner's view of one campaign.
type CampaignDetails struct {
	Campaign      *entity.Campaign      `json:"campaign"`
	Comments      []*entity.Comment     `json:"comments"`
	LocationStats []entity.LocationStat `json:"location_stats"`
}

// VendorCampaigns lists a vendor's campaigns with totals.
type VendorCampaigns struct {
	Campaigns []*entity.Campaign   `json:"campaigns"`
	Summary   entity.VendorSummary `json:"summary"`
}

// StatusCheckResult reports what a lifecycle check did.
type StatusCheckResult struct {
	Status           entity.CampaignStatus   `json:"status"`
	Completed        bool                    `json:"completed"`
	Reason           entity.CompletionReason `json:"reason,omitempty"`
	LowBudgetAlerted bool                    `json:"low_budget_alerted"`
}

// TransactionPage is a page of a vendor's payment history.
type TransactionPage struct {
	Transactions  []*entity.PaymentTransaction `json:"transactions"`
	Page          int                          `json:"page"`
	Limit         int                          `json:"limit"`
	TotalCount    int64                        `json:"total_count"`
	TotalPages    int                          `json:"total_pages"`
	TotalSpending decimal.Decimal              `json:"total_spending"`
}

// CampaignUsecase manages campaigns and drives their lifecycle.
type CampaignUsecase interface {
	Create(ctx context.Context, vendorID uuid.UUID, input CreateCampaignInput) (*entity.Campaign, error)
	Update(ctx context.Context, vendorID, campaignID uuid.UUID, input UpdateCampaignInput) (*entity.Campaign, error)
	Get(ctx context.Context, actor Actor, campaignID uuid.UUID) (*CampaignDetails, error)
	ListVendorCampaigns(ctx context.Context, vendorID uuid.UUID, status *entity.CampaignStatus) ([]*entity.Campaign, error)
	VendorStats(ctx context.Context, vendorID uuid.UUID) (*VendorCampaigns, error)

	// ConfirmPayment activates a paid campaign and records its transaction.
	ConfirmPayment(ctx context.Context, confirmation PaymentConfirmation) (*entity.Campaign, error)
	Pause(ctx context.Context, vendorID, campaignID uuid.UUID) (*entity.Campaign, error)
	Resume(ctx context.Context, vendorID, campaignID uuid.UUID) (*entity.Campaign, error)
	// Delete removes the campaign with its events and comments, then releases its media.
	Delete(ctx context.Context, actor Actor, campaignID uuid.UUID) error
	// CheckStatus completes an exhausted or ended campaign and raises the low budget alert.
	CheckStatus(ctx context.Context, campaignID uuid.UUID) (*StatusCheckResult, error)

	ShareQR(ctx context.Context, campaignID uuid.UUID) ([]byte, error)
	ListTransactions(ctx context.Context, vendorID uuid.UUID, page Page) (*TransactionPage, error)
	TransactionStats(ctx context.Context, vendorID uuid.UUID) (*entity.TransactionStats, error)
}

// MaintenanceUsecase holds the periodic sweeps run by the scheduler.
type MaintenanceUsecase interface {
	// CheckAllRunning runs CheckStatus on every RUNNING campaign and returns how many completed.
	CheckAllRunning(ctx context.Context) (int, error)
	// RecomputeAllCTR rewrites ctr from the counters of every campaign.
	RecomputeAllCTR(ctx context.Context) (int64, error)
	// SendDailyPerformanceSummaries notifies each vendor with traffic yesterday.
	SendDailyPerformanceSummaries(ctx context.Context) (int, error)
	// NotifyEndingSoon warns vendors about running campaigns close to their end date.
	NotifyEndingSoon(ctx context.Context) (int, error)
}
