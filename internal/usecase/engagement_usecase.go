package usecase

import (
	"context"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// ConversionInput is the optional payload of a conversion.
type ConversionInput struct {
	Amount   *decimal.Decimal
	Type     string
	Metadata map[string]any
}

// --- Output DTOs ---

// ToggleResult tells the client which state a toggle landed in.
type ToggleResult struct {
	Kind   entity.ReactionKind `json:"kind"`
	Action string              `json:"action"`
	Active bool                `json:"active"`
}

// ShareResult returns the campaign's share count after the share.
type ShareResult struct {
	ShareCount int64 `json:"share_count"`
}

// ImpressionResult reports whether the impression was counted.
type ImpressionResult struct {
	Recorded bool `json:"recorded"`
}

// ClickResult is the campaign state right after a click was charged.
type ClickResult struct {
	ClickCount        int64                 `json:"click_count"`
	CurrentSpending   decimal.Decimal       `json:"current_spending"`
	RemainingSpending decimal.Decimal       `json:"remaining_spending"`
	Status            entity.CampaignStatus `json:"status"`
}

// EngagementUsecase records user interactions with campaigns.
type EngagementUsecase interface {
	// ToggleReaction flips the user's like, dislike, love or save on a campaign.
	ToggleReaction(ctx context.Context, kind entity.ReactionKind, campaignID, userID uuid.UUID) (*ToggleResult, error)

	// Share appends a share.
	Share(ctx context.Context, campaignID, userID uuid.UUID) (*ShareResult, error)

	// RecordImpression counts at most one impression per user and campaign within the dedup window.
	RecordImpression(ctx context.Context, campaignID, userID uuid.UUID, meta entity.EventMeta) (*ImpressionResult, error)

	// RecordClick appends a click, charges the cost per click and re-evaluates the campaign status.
	RecordClick(ctx context.Context, campaignID, userID uuid.UUID, meta entity.EventMeta) (*ClickResult, error)

	// RecordConversion appends a conversion and notifies the vendor.
	RecordConversion(ctx context.Context, campaignID, userID uuid.UUID, input ConversionInput) (*entity.Conversion, error)

	// GetEngagementStatus returns the user's current toggles on a campaign.
	GetEngagementStatus(ctx context.Context, campaignID, userID uuid.UUID) (*entity.ReactionFlags, error)
}
