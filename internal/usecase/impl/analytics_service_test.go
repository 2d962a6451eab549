package impl

import (
	"context"
	"testing"
	"time"

	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	mockRepo "adreach/internal/mocks/repository"
	mockSvc "adreach/internal/mocks/service"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type analyticsFixtures struct {
	service       *analyticsService
	campaignRepo  *mockRepo.MockCampaignRepository
	analyticsRepo *mockRepo.MockAnalyticsRepository
	paymentRepo   *mockRepo.MockPaymentTransactionRepository
	userRepo      *mockRepo.MockUserRepository
	exporter      *mockSvc.MockReportExporter
}

func createTestAnalyticsService(t *testing.T) analyticsFixtures {
	fx := analyticsFixtures{
		campaignRepo:  mockRepo.NewMockCampaignRepository(t),
		analyticsRepo: mockRepo.NewMockAnalyticsRepository(t),
		paymentRepo:   mockRepo.NewMockPaymentTransactionRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		exporter:      mockSvc.NewMockReportExporter(t),
	}

	svc := NewAnalyticsService(AnalyticsServiceParams{
		CampaignRepo:  fx.campaignRepo,
		AnalyticsRepo: fx.analyticsRepo,
		PaymentRepo:   fx.paymentRepo,
		UserRepo:      fx.userRepo,
		Exporter:      fx.exporter,
		Config:        testConfig(),
		Logger:        discardLogger(),
	}).(*analyticsService)
	svc.now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

func vendorActor(id uuid.UUID) usecase.Actor {
	return usecase.Actor{UserID: id, Role: entity.RoleVendor}
}

func TestAnalyticsService_TodayStats(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	vendorID := uuid.New()
	campaign := runningCampaign(vendorID)
	from := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.analyticsRepo.EXPECT().CountEvents(ctx, campaign.ID, from, from.AddDate(0, 0, 1)).
		Return(entity.EventCounts{Impressions: 200, Clicks: 9, Likes: 4, Shares: 1}, nil)

	stats, err := fx.service.TodayStats(ctx, vendorActor(vendorID), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-12", stats.Date)
	assert.Equal(t, 4.5, stats.CTR)
	assert.Equal(t, 2.5, stats.EngagementRate)
}

func TestAnalyticsService_TodayStats_NotOwner(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	campaign := runningCampaign(uuid.New())

	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)

	_, err := fx.service.TodayStats(ctx, vendorActor(uuid.New()), campaign.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotCampaignOwner)
}

func TestAnalyticsService_WindowStats(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	vendorID := uuid.New()
	campaign := runningCampaign(vendorID)
	from := time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC)

	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.analyticsRepo.EXPECT().DailyEventCounts(ctx, campaign.ID, from, to, "UTC").Return([]entity.DayEventCount{
		{Day: "2025-03-06", Kind: entity.EventImpression, Count: 100},
		{Day: "2025-03-06", Kind: entity.EventClick, Count: 5},
		{Day: "2025-03-12", Kind: entity.EventImpression, Count: 50},
	}, nil)

	stats, err := fx.service.WindowStats(ctx, vendorActor(vendorID), campaign.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, campaign.ID, stats.CampaignID)
	assert.Len(t, stats.Daily, 7)
	assert.Equal(t, "2025-03-06", stats.From)
	assert.Equal(t, "2025-03-12", stats.To)
	assert.Equal(t, int64(150), stats.Summary.Impressions)
	assert.Equal(t, int64(0), stats.Daily[3].Impressions)
}

func TestAnalyticsService_WindowStats_RejectsUnsupportedWindow(t *testing.T) {
	fx := createTestAnalyticsService(t)

	_, err := fx.service.WindowStats(context.Background(), vendorActor(uuid.New()), uuid.New(), 14)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWindow)
}

func TestAnalyticsService_DailyChart_WindowBounds(t *testing.T) {
	fx := createTestAnalyticsService(t)

	_, err := fx.service.DailyChart(context.Background(), vendorActor(uuid.New()), uuid.New(), 91)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWindow)

	_, err = fx.service.DayOfWeekChart(context.Background(), vendorActor(uuid.New()), uuid.New(), -1)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWindow)
}

func TestAnalyticsService_LocationStats(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	vendorID := uuid.New()
	campaign := runningCampaign(vendorID)

	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.analyticsRepo.EXPECT().CityCounts(mock.Anything, campaign.ID, entity.EventImpression).
		Return(map[string]int64{"Mumbai": 100, "": 10}, nil)
	fx.analyticsRepo.EXPECT().CityCounts(mock.Anything, campaign.ID, entity.EventClick).
		Return(map[string]int64{"Mumbai": 7}, nil)

	stats, err := fx.service.LocationStats(ctx, vendorActor(vendorID), campaign.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, entity.LocationStat{City: "Mumbai", Impressions: 100, Clicks: 7, CTR: 7}, stats[0])
	assert.Equal(t, entity.UnknownCity, stats[1].City)
}

func TestAnalyticsService_ExportWindowStats(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	vendorID := uuid.New()
	campaign := runningCampaign(vendorID)
	workbook := []byte("PK")

	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.analyticsRepo.EXPECT().DailyEventCounts(ctx, campaign.ID, mock.Anything, mock.Anything, "UTC").Return(nil, nil)
	fx.exporter.EXPECT().ExportWindowStats(campaign.Title, mock.MatchedBy(func(s entity.WindowStats) bool {
		return s.Days == 30 && len(s.Daily) == 30
	})).Return(workbook, nil)

	data, err := fx.service.ExportWindowStats(ctx, vendorActor(vendorID), campaign.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, workbook, data)
}

func TestAnalyticsService_PlatformRevenueOverview(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	period := 30 * 24 * time.Hour

	fx.paymentRepo.EXPECT().SumRevenue(mock.Anything, time.Time{}, fixedNow).Return(decimal.NewFromInt(9000), nil)
	fx.paymentRepo.EXPECT().SumRevenue(mock.Anything, fixedNow.Add(-period), fixedNow).Return(decimal.NewFromInt(1500), nil)
	fx.paymentRepo.EXPECT().SumRevenue(mock.Anything, fixedNow.Add(-2*period), fixedNow.Add(-period)).
		Return(decimal.NewFromInt(1000), nil)
	fx.paymentRepo.EXPECT().
		RevenueByMonth(mock.Anything, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), fixedNow, "UTC").
		Return(map[string]decimal.Decimal{
			"2025-01": decimal.NewFromInt(400),
			"2025-02": decimal.NewFromInt(600),
		}, nil)
	fx.campaignRepo.EXPECT().TopByImpressions(mock.Anything, 10).Return(nil, nil)

	overview, err := fx.service.PlatformRevenueOverview(ctx)
	require.NoError(t, err)

	assert.True(t, overview.TotalRevenue.Equal(decimal.NewFromInt(9000)))
	assert.Equal(t, 50.0, overview.Growth.GrowthPercentage)
	assert.Equal(t, entity.TrendUp, overview.Growth.Trend)
	require.Len(t, overview.MonthlyRevenue, 12)
	assert.Equal(t, "Apr 2024", overview.MonthlyRevenue[0].Month)
	assert.Equal(t, "Mar 2025", overview.MonthlyRevenue[11].Month)
	assert.Nil(t, overview.MonthlyRevenue[0].GrowthPercentage)
	assert.True(t, overview.MonthlyRevenue[9].Revenue.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, entity.TrendUp, overview.MonthlyRevenue[9].Trend)
	assert.Equal(t, entity.TrendDown, overview.MonthlyRevenue[11].Trend)
	assert.NotNil(t, overview.TopCampaigns)
}

func TestAnalyticsService_PlatformRevenueOverview_PropagatesErrors(t *testing.T) {
	fx := createTestAnalyticsService(t)

	fx.paymentRepo.EXPECT().SumRevenue(mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, errors.New("db down")).Maybe()
	fx.paymentRepo.EXPECT().RevenueByMonth(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Maybe()
	fx.campaignRepo.EXPECT().TopByImpressions(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	_, err := fx.service.PlatformRevenueOverview(context.Background())
	require.Error(t, err)
}

func TestAnalyticsService_AdminOverview(t *testing.T) {
	fx := createTestAnalyticsService(t)
	banned := entity.ActiveStatusBanned

	fx.userRepo.EXPECT().Count(mock.Anything, entity.RoleUser, (*entity.ActiveStatus)(nil)).Return(120, nil)
	fx.userRepo.EXPECT().Count(mock.Anything, entity.RoleUser, &banned).Return(3, nil)
	fx.userRepo.EXPECT().Count(mock.Anything, entity.RoleVendor, (*entity.ActiveStatus)(nil)).Return(15, nil)
	fx.userRepo.EXPECT().Count(mock.Anything, entity.RoleAdmin, (*entity.ActiveStatus)(nil)).Return(2, nil)
	fx.campaignRepo.EXPECT().CountByStatus(mock.Anything).Return(map[entity.CampaignStatus]int64{
		entity.CampaignStatusRunning:   7,
		entity.CampaignStatusCompleted: 4,
	}, nil)
	fx.paymentRepo.EXPECT().SumRevenue(mock.Anything, time.Time{}, fixedNow).Return(decimal.NewFromInt(4200), nil)

	overview, err := fx.service.AdminOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), overview.TotalUsers)
	assert.Equal(t, int64(3), overview.TotalBannedUsers)
	assert.Equal(t, int64(15), overview.TotalVendors)
	assert.Equal(t, int64(2), overview.TotalAdmins)
	assert.Equal(t, int64(7), overview.RunningCampaigns)
	assert.Equal(t, int64(0), overview.PausedCampaigns)
	assert.True(t, overview.TotalRevenue.Equal(decimal.NewFromInt(4200)))
}
