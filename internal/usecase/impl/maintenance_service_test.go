package impl

import (
	"context"
	"testing"
	"time"

	"adreach/internal/domain/entity"
	mockRepo "adreach/internal/mocks/repository"
	mockSvc "adreach/internal/mocks/service"
	mockUsecase "adreach/internal/mocks/usecase"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type maintenanceFixtures struct {
	service       *maintenanceService
	campaigns     *mockUsecase.MockCampaignUsecase
	campaignRepo  *mockRepo.MockCampaignRepository
	analyticsRepo *mockRepo.MockAnalyticsRepository
	notifier      *mockSvc.MockNotifier
}

func createTestMaintenanceService(t *testing.T) maintenanceFixtures {
	fx := maintenanceFixtures{
		campaigns:     mockUsecase.NewMockCampaignUsecase(t),
		campaignRepo:  mockRepo.NewMockCampaignRepository(t),
		analyticsRepo: mockRepo.NewMockAnalyticsRepository(t),
		notifier:      mockSvc.NewMockNotifier(t),
	}

	svc := NewMaintenanceService(MaintenanceServiceParams{
		Campaigns:     fx.campaigns,
		CampaignRepo:  fx.campaignRepo,
		AnalyticsRepo: fx.analyticsRepo,
		Notifier:      fx.notifier,
		Config:        testConfig(),
		Logger:        discardLogger(),
	}).(*maintenanceService)
	svc.now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

func TestMaintenanceService_CheckAllRunning_SkipsFailures(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	fx.campaignRepo.EXPECT().ListIDsByStatus(ctx, entity.CampaignStatusRunning).Return(ids, nil)
	fx.campaigns.EXPECT().CheckStatus(ctx, ids[0]).
		Return(&usecase.StatusCheckResult{Status: entity.CampaignStatusCompleted, Completed: true}, nil)
	fx.campaigns.EXPECT().CheckStatus(ctx, ids[1]).Return(nil, errors.New("deadlock detected"))
	fx.campaigns.EXPECT().CheckStatus(ctx, ids[2]).
		Return(&usecase.StatusCheckResult{Status: entity.CampaignStatusRunning}, nil)

	completed, err := fx.service.CheckAllRunning(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, completed)
}

func TestMaintenanceService_CheckAllRunning_StopsOnCancel(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.campaignRepo.EXPECT().ListIDsByStatus(ctx, entity.CampaignStatusRunning).Return([]uuid.UUID{uuid.New()}, nil)

	_, err := fx.service.CheckAllRunning(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMaintenanceService_RecomputeAllCTR(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()

	fx.campaignRepo.EXPECT().RecomputeAllCTR(ctx).Return(42, nil)

	updated, err := fx.service.RecomputeAllCTR(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), updated)
}

func TestMaintenanceService_SendDailyPerformanceSummaries(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()
	active := uuid.New()
	idle := uuid.New()
	yesterday := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)

	fx.analyticsRepo.EXPECT().VendorActivity(ctx, yesterday, yesterday.AddDate(0, 0, 1)).Return([]entity.VendorActivity{
		{VendorID: active, Impressions: 320, Clicks: 12},
		{VendorID: idle},
	}, nil)
	fx.notifier.EXPECT().Notify(ctx, active, mock.MatchedBy(func(m entity.NotificationMessage) bool {
		return m.Type == entity.NotificationCampaignPerformance &&
			m.Data["date"] == "2025-03-11" &&
			m.Data["impressions"] == int64(320)
	}))

	sent, err := fx.service.SendDailyPerformanceSummaries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestMaintenanceService_NotifyEndingSoon(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()
	campaign := runningCampaign(uuid.New())
	campaign.EndDate = fixedNow.Add(30 * time.Hour)

	fx.campaignRepo.EXPECT().ListRunningEndingBetween(ctx, fixedNow, fixedNow.Add(48*time.Hour)).
		Return([]*entity.Campaign{campaign}, nil)
	fx.notifier.EXPECT().Notify(ctx, campaign.VendorID, mock.MatchedBy(func(m entity.NotificationMessage) bool {
		return m.Type == entity.NotificationCampaignEndingSoon &&
			m.Data["days_remaining"] == 2 &&
			m.Message == `Campaign "Monsoon Sale" ends in 2 day(s)`
	}))

	notified, err := fx.service.NotifyEndingSoon(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, notified)
}
