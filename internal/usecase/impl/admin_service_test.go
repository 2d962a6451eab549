package impl

import (
	"context"
	"testing"

	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	mockRepo "adreach/internal/mocks/repository"
	mockUsecase "adreach/internal/mocks/usecase"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminFixtures struct {
	service      usecase.AdminUsecase
	campaignRepo *mockRepo.MockCampaignRepository
	userRepo     *mockRepo.MockUserRepository
	analytics    *mockUsecase.MockAnalyticsUsecase
}

func createTestAdminService(t *testing.T) adminFixtures {
	fx := adminFixtures{
		campaignRepo: mockRepo.NewMockCampaignRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		analytics:    mockUsecase.NewMockAnalyticsUsecase(t),
	}
	fx.service = NewAdminService(AdminServiceParams{
		CampaignRepo: fx.campaignRepo,
		UserRepo:     fx.userRepo,
		Analytics:    fx.analytics,
		Logger:       discardLogger(),
	})

	return fx
}

func TestAdminService_ListCampaigns(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	campaigns := []*entity.Campaign{runningCampaign(uuid.New())}

	fx.campaignRepo.EXPECT().List(ctx, 40, 20).Return(campaigns, int64(41), nil)

	page, err := fx.service.ListCampaigns(ctx, usecase.Page{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(41), page.TotalCount)
}

func TestAdminService_FlagCampaign(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.campaignRepo.EXPECT().SetFlagged(ctx, id, true).Return(nil)

		require.NoError(t, fx.service.FlagCampaign(ctx, id, true))
	})

	t.Run("unknown campaign", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.campaignRepo.EXPECT().SetFlagged(ctx, id, false).Return(repository.ErrCampaignNotFound)

		err := fx.service.FlagCampaign(ctx, id, false)
		assert.ErrorIs(t, err, domainerrors.ErrCampaignNotFound)
	})
}

func TestAdminService_BanUser(t *testing.T) {
	t.Run("bans a user", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)
		fx.userRepo.EXPECT().SetActiveStatus(ctx, userID, entity.ActiveStatusBanned).Return(nil)

		require.NoError(t, fx.service.BanUser(ctx, userID, true))
	})

	t.Run("reinstates a user", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleVendor}, nil)
		fx.userRepo.EXPECT().SetActiveStatus(ctx, userID, entity.ActiveStatusActive).Return(nil)

		require.NoError(t, fx.service.BanUser(ctx, userID, false))
	})

	t.Run("admins cannot be banned", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleAdmin}, nil)

		err := fx.service.BanUser(ctx, userID, true)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		err := fx.service.BanUser(ctx, userID, true)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestAdminService_CampaignAnalytics(t *testing.T) {
	fx := createTestAdminService(t)
	campaignID := uuid.New()
	admin := usecase.Actor{Role: entity.RoleAdmin}
	today := &entity.TodayStats{CampaignID: campaignID, Date: "2025-03-12"}
	window := &entity.WindowStats{CampaignID: campaignID, Days: 7}

	fx.analytics.EXPECT().TodayStats(mock.Anything, admin, campaignID).Return(today, nil)
	fx.analytics.EXPECT().WindowStats(mock.Anything, admin, campaignID, 7).Return(window, nil)

	result, err := fx.service.CampaignAnalytics(context.Background(), campaignID)
	require.NoError(t, err)
	assert.Same(t, today, result.Today)
	assert.Same(t, window, result.Window)
}
