package impl

import (
	"context"
	"testing"
	"time"

	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	mockRepo "adreach/internal/mocks/repository"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type feedFixtures struct {
	service        *feedService
	campaignRepo   *mockRepo.MockCampaignRepository
	engagementRepo *mockRepo.MockEngagementRepository
	userRepo       *mockRepo.MockUserRepository
}

func createTestFeedService(t *testing.T, enforceAge bool) feedFixtures {
	fx := feedFixtures{
		campaignRepo:   mockRepo.NewMockCampaignRepository(t),
		engagementRepo: mockRepo.NewMockEngagementRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
	}

	cfg := testConfig()
	cfg.Feed.EnforceAgeTargeting = enforceAge
	svc := NewFeedService(FeedServiceParams{
		CampaignRepo:   fx.campaignRepo,
		EngagementRepo: fx.engagementRepo,
		UserRepo:       fx.userRepo,
		Config:         cfg,
		Logger:         discardLogger(),
	}).(*feedService)
	svc.now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

func ranked(n int) []*entity.RankedCampaign {
	items := make([]*entity.RankedCampaign, 0, n)
	for range n {
		c := runningCampaign(uuid.New())
		items = append(items, &entity.RankedCampaign{Campaign: c})
	}

	return items
}

func locatedUser(userID uuid.UUID) *entity.User {
	lat, lon := 19.1, 72.9
	dob := time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC)

	return &entity.User{
		ID:           userID,
		Role:         entity.RoleUser,
		Latitude:     &lat,
		Longitude:    &lon,
		DateOfBirth:  &dob,
		ActiveStatus: entity.ActiveStatusActive,
	}
}

func TestFeedService_Feed_HasMoreFromExtraRow(t *testing.T) {
	fx := createTestFeedService(t, false)
	ctx := context.Background()
	userID := uuid.New()
	items := ranked(3)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(locatedUser(userID), nil)
	fx.campaignRepo.EXPECT().Feed(ctx, mock.MatchedBy(func(q entity.FeedQuery) bool {
		return q.Limit == 3 && q.Offset == 2 && q.Age == nil && q.Now.Equal(fixedNow)
	})).Return(items, nil)

	reactions := entity.ReactionSet{}
	reactions.Mark(items[1].ID, entity.ReactionLove)
	fx.engagementRepo.EXPECT().ReactionsFor(ctx, userID, []uuid.UUID{items[0].ID, items[1].ID}).Return(reactions, nil)

	page, err := fx.service.Feed(ctx, userID, usecase.Page{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.True(t, page.HasMore)
	assert.Len(t, page.Data, 2)
	assert.False(t, page.Data[0].Loved)
	assert.True(t, page.Data[1].Loved)
}

func TestFeedService_Feed_LastPage(t *testing.T) {
	fx := createTestFeedService(t, false)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(locatedUser(userID), nil)
	fx.campaignRepo.EXPECT().Feed(ctx, mock.Anything).Return(nil, nil)

	page, err := fx.service.Feed(ctx, userID, usecase.Page{})
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
}

func TestFeedService_Feed_AgeTargeting(t *testing.T) {
	fx := createTestFeedService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(locatedUser(userID), nil)
	fx.campaignRepo.EXPECT().Feed(ctx, mock.MatchedBy(func(q entity.FeedQuery) bool {
		return q.Age != nil && *q.Age == 24
	})).Return(nil, nil)

	_, err := fx.service.Feed(ctx, userID, usecase.Page{})
	require.NoError(t, err)
}

func TestFeedService_Feed_Errors(t *testing.T) {
	t.Run("no location", func(t *testing.T) {
		fx := createTestFeedService(t, false)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

		_, err := fx.service.Feed(ctx, userID, usecase.Page{})
		assert.ErrorIs(t, err, domainerrors.ErrLocationRequired)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestFeedService(t, false)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Feed(ctx, userID, usecase.Page{})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestFeedService_Search(t *testing.T) {
	fx := createTestFeedService(t, false)
	ctx := context.Background()
	userID := uuid.New()
	items := ranked(2)
	items[0].Title = "Pizza Party"
	items[1].Title = "Free pizza Friday"

	fx.campaignRepo.EXPECT().Search(ctx, mock.MatchedBy(func(q entity.SearchQuery) bool {
		return q.Term == "pizza" && q.Limit == 21
	})).Return(items, nil)
	fx.engagementRepo.EXPECT().ReactionsFor(ctx, userID, mock.Anything).Return(entity.ReactionSet{}, nil)

	page, err := fx.service.Search(ctx, userID, "  pizza ", usecase.Page{})
	require.NoError(t, err)
	assert.Equal(t, "pizza", page.SearchTerm)
	assert.False(t, page.HasMore)
	assert.Equal(t, entity.MatchTitlePrefix, page.Data[0].MatchType)
	assert.Equal(t, entity.MatchTitleContains, page.Data[1].MatchType)
}

func TestFeedService_Search_EmptyTerm(t *testing.T) {
	fx := createTestFeedService(t, false)

	_, err := fx.service.Search(context.Background(), uuid.New(), "   ", usecase.Page{})
	assert.ErrorIs(t, err, domainerrors.ErrEmptySearchTerm)
}

func TestFeedService_UpdateLocation(t *testing.T) {
	t.Run("stores the fix", func(t *testing.T) {
		fx := createTestFeedService(t, false)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().UpdateLocation(ctx, userID, 28.61, 77.2).Return(nil)

		err := fx.service.UpdateLocation(ctx, userID, entity.GeoPoint{Lat: 28.61, Lon: 77.2})
		require.NoError(t, err)
	})

	t.Run("out of range", func(t *testing.T) {
		fx := createTestFeedService(t, false)

		err := fx.service.UpdateLocation(context.Background(), uuid.New(), entity.GeoPoint{Lat: 91})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
