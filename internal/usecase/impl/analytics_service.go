package impl

import (
	"context"
	"log/slog"
	"time"

	"adreach/config"
	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	"adreach/internal/domain/service"
	"adreach/internal/errors"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	revenueTrendMonths = 12
	growthPeriod       = 30 * 24 * time.Hour
	monthKeyLayout     = "2006-01"
)

type analyticsService struct {
	campaignRepo  repository.CampaignRepository
	analyticsRepo repository.AnalyticsRepository
	paymentRepo   repository.PaymentTransactionRepository
	userRepo      repository.UserRepository
	exporter      service.ReportExporter
	timezone      string
	location      *time.Location
	topCampaigns  int
	logger        *slog.Logger
	now           func() time.Time
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	CampaignRepo  repository.CampaignRepository
	AnalyticsRepo repository.AnalyticsRepository
	PaymentRepo   repository.PaymentTransactionRepository
	UserRepo      repository.UserRepository
	Exporter      service.ReportExporter
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAnalyticsService creates the read-only analytics aggregator.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	location := loadLocation(params.Config.Analytics.Timezone)

	return &analyticsService{
		campaignRepo:  params.CampaignRepo,
		analyticsRepo: params.AnalyticsRepo,
		paymentRepo:   params.PaymentRepo,
		userRepo:      params.UserRepo,
		exporter:      params.Exporter,
		timezone:      params.Config.Analytics.Timezone,
		location:      location,
		topCampaigns:  params.Config.Analytics.TopCampaigns,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// authorize loads the campaign and checks the actor may read its analytics.
func (s *analyticsService) authorize(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID) (*entity.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, campaignErr(err, "failed to find campaign")
	}
	if !actor.IsAdmin() && !campaign.IsOwnedBy(actor.UserID) {
		return nil, domainerrors.ErrNotCampaignOwner
	}

	return campaign, nil
}

func (s *analyticsService) TodayStats(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID) (*entity.TodayStats, error) {
	if _, err := s.authorize(ctx, actor, campaignID); err != nil {
		return nil, err
	}

	return s.today(ctx, campaignID)
}

func (s *analyticsService) today(ctx context.Context, campaignID uuid.UUID) (*entity.TodayStats, error) {
	from, to := entity.DayRange(s.now(), 1, s.location)
	counts, err := s.analyticsRepo.CountEvents(ctx, campaignID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count today's events")
	}

	return &entity.TodayStats{
		CampaignID:     campaignID,
		Date:           from.Format(entity.DateLayout),
		MetricSnapshot: entity.NewMetricSnapshot(counts),
	}, nil
}

func (s *analyticsService) WindowStats(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID, days int) (*entity.WindowStats, error) {
	if !entity.IsSupportedWindow(days) {
		return nil, domainerrors.ErrInvalidWindow
	}
	if _, err := s.authorize(ctx, actor, campaignID); err != nil {
		return nil, err
	}

	return s.window(ctx, campaignID, days)
}

// window buckets the trailing days calendar days in the analytics timezone.
func (s *analyticsService) window(ctx context.Context, campaignID uuid.UUID, days int) (*entity.WindowStats, error) {
	from, to := entity.DayRange(s.now(), days, s.location)
	rows, err := s.analyticsRepo.DailyEventCounts(ctx, campaignID, from, to, s.timezone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load daily event counts")
	}

	stats := entity.BuildWindowStats(from, days, rows)
	stats.CampaignID = campaignID

	return &stats, nil
}

// chartWindow accepts any positive window up to the longest rollup.
func (s *analyticsService) chartWindow(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID, days int) (*entity.WindowStats, error) {
	if days == 0 {
		days = 7
	}
	if days < 1 || days > 90 {
		return nil, domainerrors.ErrInvalidWindow
	}
	if _, err := s.authorize(ctx, actor, campaignID); err != nil {
		return nil, err
	}

	return s.window(ctx, campaignID, days)
}

func (s *analyticsService) DailyChart(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID, days int) ([]entity.ChartPoint, error) {
	stats, err := s.chartWindow(ctx, actor, campaignID, days)
	if err != nil {
		return nil, err
	}

	return entity.DailyChart(*stats), nil
}

func (s *analyticsService) DayOfWeekChart(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID, days int) ([]entity.ChartPoint, error) {
	stats, err := s.chartWindow(ctx, actor, campaignID, days)
	if err != nil {
		return nil, err
	}

	return entity.DayOfWeekChart(*stats), nil
}

func (s *analyticsService) LocationStats(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID) ([]entity.LocationStat, error) {
	if _, err := s.authorize(ctx, actor, campaignID); err != nil {
		return nil, err
	}

	var impressions, clicks map[string]int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		impressions, err = s.analyticsRepo.CityCounts(gctx, campaignID, entity.EventImpression)
		return errors.Wrap(err, "failed to count impressions by city")
	})
	g.Go(func() error {
		var err error
		clicks, err = s.analyticsRepo.CityCounts(gctx, campaignID, entity.EventClick)
		return errors.Wrap(err, "failed to count clicks by city")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entity.MergeLocationStats(impressions, clicks), nil
}

// ExportWindowStats renders the window rollup as a workbook named after the campaign.
func (s *analyticsService) ExportWindowStats(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID, days int) ([]byte, error) {
	if !entity.IsSupportedWindow(days) {
		return nil, domainerrors.ErrInvalidWindow
	}
	campaign, err := s.authorize(ctx, actor, campaignID)
	if err != nil {
		return nil, err
	}

	stats, err := s.window(ctx, campaignID, days)
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.ExportWindowStats(campaign.Title, *stats)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export window stats")
	}

	return data, nil
}

// PlatformRevenueOverview sums successful campaign payments: all time, the trailing
// 30 days against the 30 before, and a monthly trend.
func (s *analyticsService) PlatformRevenueOverview(ctx context.Context) (*entity.RevenueOverview, error) {
	now := s.now()
	months := entity.TrailingMonths(now, revenueTrendMonths, s.location)

	var (
		total, current, previous decimal.Decimal
		byMonth                  map[string]decimal.Decimal
		top                      []entity.TopCampaign
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.paymentRepo.SumRevenue(gctx, time.Time{}, now)
		return errors.Wrap(err, "failed to sum total revenue")
	})
	g.Go(func() error {
		var err error
		current, err = s.paymentRepo.SumRevenue(gctx, now.Add(-growthPeriod), now)
		return errors.Wrap(err, "failed to sum current revenue")
	})
	g.Go(func() error {
		var err error
		previous, err = s.paymentRepo.SumRevenue(gctx, now.Add(-2*growthPeriod), now.Add(-growthPeriod))
		return errors.Wrap(err, "failed to sum previous revenue")
	})
	g.Go(func() error {
		var err error
		byMonth, err = s.paymentRepo.RevenueByMonth(gctx, months[0], now, s.timezone)
		return errors.Wrap(err, "failed to load monthly revenue")
	})
	g.Go(func() error {
		var err error
		top, err = s.campaignRepo.TopByImpressions(gctx, s.topCampaigns)
		return errors.Wrap(err, "failed to load top campaigns")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	series := make([]entity.MonthRevenue, 0, len(months))
	for _, start := range months {
		revenue, ok := byMonth[start.Format(monthKeyLayout)]
		if !ok {
			revenue = decimal.Zero
		}
		series = append(series, entity.MonthRevenue{Start: start, Revenue: revenue})
	}
	if top == nil {
		top = []entity.TopCampaign{}
	}

	return &entity.RevenueOverview{
		TotalRevenue:   total,
		Growth:         entity.NewRevenueGrowth(current, previous),
		MonthlyRevenue: entity.BuildRevenueTrend(series),
		TopCampaigns:   top,
	}, nil
}

func (s *analyticsService) AdminOverview(ctx context.Context) (*entity.AdminOverview, error) {
	banned := entity.ActiveStatusBanned
	overview := &entity.AdminOverview{}

	var byStatus map[entity.CampaignStatus]int64
	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int64, role entity.Role, status *entity.ActiveStatus) {
		g.Go(func() error {
			n, err := s.userRepo.Count(gctx, role, status)
			*dst = n
			return errors.Wrapf(err, "failed to count %s users", role)
		})
	}
	count(&overview.TotalUsers, entity.RoleUser, nil)
	count(&overview.TotalBannedUsers, entity.RoleUser, &banned)
	count(&overview.TotalVendors, entity.RoleVendor, nil)
	count(&overview.TotalAdmins, entity.RoleAdmin, nil)
	g.Go(func() error {
		var err error
		byStatus, err = s.campaignRepo.CountByStatus(gctx)
		return errors.Wrap(err, "failed to count campaigns")
	})
	g.Go(func() error {
		var err error
		overview.TotalRevenue, err = s.paymentRepo.SumRevenue(gctx, time.Time{}, s.now())
		return errors.Wrap(err, "failed to sum revenue")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview.RunningCampaigns = byStatus[entity.CampaignStatusRunning]
	overview.PausedCampaigns = byStatus[entity.CampaignStatusPaused]
	overview.CompletedCampaigns = byStatus[entity.CampaignStatusCompleted]

	return overview, nil
}
