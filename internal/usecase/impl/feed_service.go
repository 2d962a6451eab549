package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"adreach/config"
	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	"adreach/internal/errors"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type feedService struct {
	campaignRepo   repository.CampaignRepository
	engagementRepo repository.EngagementRepository
	userRepo       repository.UserRepository
	cfg            config.FeedConfig
	maxRadiusKm    float64
	logger         *slog.Logger
	now            func() time.Time
}

// FeedServiceParams holds dependencies for FeedService, injected by Fx.
type FeedServiceParams struct {
	fx.In

	CampaignRepo   repository.CampaignRepository
	EngagementRepo repository.EngagementRepository
	UserRepo       repository.UserRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewFeedService creates the feed and search ranker.
func NewFeedService(params FeedServiceParams) usecase.FeedUsecase {
	return &feedService{
		campaignRepo:   params.CampaignRepo,
		engagementRepo: params.EngagementRepo,
		userRepo:       params.UserRepo,
		cfg:            params.Config.Feed,
		maxRadiusKm:    params.Config.Campaign.MaxRadiusKm,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (s *feedService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// Feed returns the campaigns whose targeting radius contains the user, nearest first.
func (s *feedService) Feed(ctx context.Context, userID uuid.UUID, page usecase.Page) (*usecase.FeedPage, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasLocation() {
		return nil, domainerrors.ErrLocationRequired
	}

	page, offset := page.Normalize(s.cfg.DefaultLimit, s.cfg.MaxLimit)
	now := s.now()
	point := entity.GeoPoint{Lat: *user.Latitude, Lon: *user.Longitude}

	query := entity.FeedQuery{
		Point:  point,
		Bounds: entity.BoundsAround(point, s.maxRadiusKm),
		Now:    now,
		Offset: offset,
		Limit:  page.Limit + 1,
	}
	if s.cfg.EnforceAgeTargeting {
		if age, ok := user.AgeAt(now); ok {
			query.Age = &age
		}
	}

	items, err := s.campaignRepo.Feed(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load feed")
	}

	items, hasMore := trimPage(items, page.Limit)
	if err := s.annotate(ctx, userID, items); err != nil {
		return nil, err
	}

	return &usecase.FeedPage{Data: items, Page: page.Page, Limit: page.Limit, HasMore: hasMore}, nil
}

// Search matches term against title and description of running campaigns anywhere.
func (s *feedService) Search(ctx context.Context, userID uuid.UUID, term string, page usecase.Page) (*usecase.SearchPage, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domainerrors.ErrEmptySearchTerm
	}

	page, offset := page.Normalize(s.cfg.DefaultLimit, s.cfg.MaxLimit)
	items, err := s.campaignRepo.Search(ctx, entity.SearchQuery{
		Term:   term,
		Now:    s.now(),
		Offset: offset,
		Limit:  page.Limit + 1,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search campaigns")
	}

	items, hasMore := trimPage(items, page.Limit)
	for _, item := range items {
		item.MatchType = entity.ClassifySearchMatch(item.Title, term)
	}
	if err := s.annotate(ctx, userID, items); err != nil {
		return nil, err
	}

	return &usecase.SearchPage{
		FeedPage:   usecase.FeedPage{Data: items, Page: page.Page, Limit: page.Limit, HasMore: hasMore},
		SearchTerm: term,
	}, nil
}

// annotate sets the caller's reaction flags with one batched lookup.
func (s *feedService) annotate(ctx context.Context, userID uuid.UUID, items []*entity.RankedCampaign) error {
	if len(items) == 0 {
		return nil
	}

	reactions, err := s.engagementRepo.ReactionsFor(ctx, userID, entity.CampaignIDs(items))
	if err != nil {
		return errors.Wrap(err, "failed to load reactions")
	}
	for _, item := range items {
		item.ReactionFlags = reactions.Flags(item.ID)
	}

	return nil
}

// trimPage drops the extra row fetched past limit and reports whether it existed.
func trimPage(items []*entity.RankedCampaign, limit int) ([]*entity.RankedCampaign, bool) {
	if len(items) > limit {
		return items[:limit], true
	}
	if items == nil {
		items = []*entity.RankedCampaign{}
	}

	return items, false
}

// UpdateLocation stores the user's latest GPS fix.
func (s *feedService) UpdateLocation(ctx context.Context, userID uuid.UUID, point entity.GeoPoint) error {
	if point.Lat < -90 || point.Lat > 90 || point.Lon < -180 || point.Lon > 180 {
		return domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	err := s.userRepo.UpdateLocation(ctx, userID, point.Lat, point.Lon)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to update location")
}
