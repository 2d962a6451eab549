package usecase

import (
	"context"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedPage is a page of ranked campaigns. HasMore is exact.
type FeedPage struct {
	Data    []*entity.RankedCampaign `json:"data"`
	Page    int                      `json:"page"`
	Limit   int                      `json:"limit"`
	HasMore bool                     `json:"has_more"`
}

// SearchPage is a FeedPage for a search term.
type SearchPage struct {
	FeedPage
	SearchTerm string `json:"search_term"`
}

// FeedUsecase serves campaigns to end users.
type FeedUsecase interface {
	// Feed returns running campaigns whose radius contains the user, nearest first.
	Feed(ctx context.Context, userID uuid.UUID, page Page) (*FeedPage, error)

	// Search returns running campaigns matching term anywhere, regardless of location.
	Search(ctx context.Context, userID uuid.UUID, term string, page Page) (*SearchPage, error)

	// UpdateLocation stores the user's GPS position used by Feed.
	UpdateLocation(ctx context.Context, userID uuid.UUID, point entity.GeoPoint) error
}
