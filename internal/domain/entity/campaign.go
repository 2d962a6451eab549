package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusRunning   CampaignStatus = "RUNNING"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
)

// IsValid checks if the status is one of the known values.
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusPaused, CampaignStatusRunning, CampaignStatusCompleted:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks whether the campaign budget was paid.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
)

// MediaType is the kind of creative attached to a campaign.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// CampaignMedia is an uploaded creative. StorageID is the key in the media bucket.
type CampaignMedia struct {
	Type      MediaType `json:"type"`
	URL       string    `json:"url"`
	StorageID string    `json:"storage_id"`
}

// TargetedLocation is the human readable target area used for geocoding.
type TargetedLocation struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

// AddressString joins the non-empty parts from the most to the least specific.
// An empty location resolves to fallback.
func (l TargetedLocation) AddressString(fallback string) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{l.Address, l.City, l.State, l.Country} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return fallback
	}

	return strings.Join(parts, ", ")
}

// IsZero reports whether no field is set.
func (l TargetedLocation) IsZero() bool {
	return l == TargetedLocation{}
}

// CampaignCounters are the denormalized engagement counters shown on a campaign.
// The event tables stay authoritative; these are a projection kept in step with them.
type CampaignCounters struct {
	Likes       int64 `json:"like_count"`
	Dislikes    int64 `json:"dislike_count"`
	Loves       int64 `json:"love_count"`
	Comments    int64 `json:"comment_count"`
	Shares      int64 `json:"share_count"`
	Saves       int64 `json:"save_count"`
	Impressions int64 `json:"impression_count"`
	Clicks      int64 `json:"click_count"`
	Conversions int64 `json:"conversion_count"`
}

// CampaignCounter names one of the denormalized counters.
type CampaignCounter string

const (
	CounterLikes       CampaignCounter = "likes"
	CounterDislikes    CampaignCounter = "dislikes"
	CounterLoves       CampaignCounter = "loves"
	CounterComments    CampaignCounter = "comments"
	CounterShares      CampaignCounter = "shares"
	CounterSaves       CampaignCounter = "saves"
	CounterImpressions CampaignCounter = "impressions"
	CounterClicks      CampaignCounter = "clicks"
	CounterConversions CampaignCounter = "conversions"
)

// Campaign is a vendor's paid, geo targeted advertisement.
type Campaign struct {
	ID          uuid.UUID       `json:"id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Media       []CampaignMedia `json:"media"`

	TargetedLocation TargetedLocation `json:"targeted_location"`
	TargetLatitude   *float64         `json:"target_latitude"`
	TargetLongitude  *float64         `json:"target_longitude"`
	TargetRadiusKm   float64          `json:"target_radius_km"`
	TargetedAgeMin   *int             `json:"targeted_age_min"`
	TargetedAgeMax   *int             `json:"targeted_age_max"`

	Budget            decimal.Decimal `json:"budget"`
	CurrentSpending   decimal.Decimal `json:"current_spending"`
	RemainingSpending decimal.Decimal `json:"remaining_spending"`

	Status           CampaignStatus `json:"status"`
	PaymentStatus    PaymentStatus  `json:"payment_status"`
	GatewayOrderID   string         `json:"gateway_order_id"`
	GatewayPaymentID string         `json:"gateway_payment_id,omitempty"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`

	Counters CampaignCounters `json:"counters"`
	CTR      decimal.Decimal  `json:"ctr"`

	IsFlagged          bool       `json:"is_flagged"`
	LowBudgetAlertedAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether vendorID owns the campaign.
func (c *Campaign) IsOwnedBy(vendorID uuid.UUID) bool {
	return c.VendorID == vendorID
}

// IsCompleted reports whether the campaign reached its terminal state.
func (c *Campaign) IsCompleted() bool {
	return c.Status == CampaignStatusCompleted
}

// IsPaid reports whether the payment collaborator confirmed the budget.
func (c *Campaign) IsPaid() bool {
	return c.PaymentStatus == PaymentStatusSuccess
}

// HasTarget reports whether target coordinates are set. Campaigns without them are never fed.
func (c *Campaign) HasTarget() bool {
	return c.TargetLatitude != nil && c.TargetLongitude != nil
}

// StorageIDs lists the bucket keys of the campaign's media.
func (c *Campaign) StorageIDs() []string {
	ids := make([]string, 0, len(c.Media))
	for _, m := range c.Media {
		if m.StorageID != "" {
			ids = append(ids, m.StorageID)
		}
	}

	return ids
}

// BudgetSnapshot is the ledger state of a campaign right after a debit.
type BudgetSnapshot struct {
	CampaignID        uuid.UUID       `json:"campaign_id"`
	Budget            decimal.Decimal `json:"budget"`
	CurrentSpending   decimal.Decimal `json:"current_spending"`
	RemainingSpending decimal.Decimal `json:"remaining_spending"`
}

var hundred = decimal.NewFromInt(100)

// CalculateCTR returns clicks/impressions*100 rounded to 2 decimals, 0 without impressions.
func CalculateCTR(clicks, impressions int64) decimal.Decimal {
	if impressions <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(clicks).Mul(hundred).Div(decimal.NewFromInt(impressions)).Round(2)
}

// RoundedPercent returns numerator/denominator*100 rounded to 2 decimals, 0 when denominator is 0.
func RoundedPercent(numerator, denominator int64) float64 {
	return CalculateCTR(numerator, denominator).InexactFloat64()
}
