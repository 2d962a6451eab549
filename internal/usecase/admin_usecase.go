package usecase

import (
	"context"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminCampaignPage is a page of all campaigns.
type AdminCampaignPage struct {
	Campaigns  []*entity.Campaign `json:"campaigns"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalCount int64              `json:"total_count"`
	TotalPages int                `json:"total_pages"`
}

// CampaignAnalytics is the admin snapshot of one campaign.
type CampaignAnalytics struct {
	Today  *entity.TodayStats  `json:"today"`
	Window *entity.WindowStats `json:"window"`
}

// AdminUsecase covers moderation and platform oversight.
type AdminUsecase interface {
	ListCampaigns(ctx context.Context, page Page) (*AdminCampaignPage, error)
	// FlagCampaign hides a campaign from feed and search, or unhides it.
	FlagCampaign(ctx context.Context, campaignID uuid.UUID, flagged bool) error
	// BanUser bans or reinstates a user. Banned users cannot engage.
	BanUser(ctx context.Context, userID uuid.UUID, banned bool) error
	CampaignAnalytics(ctx context.Context, campaignID uuid.UUID) (*CampaignAnalytics, error)
}
