package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adreach/config"
	deliverycontext "adreach/internal/delivery/context"
	"adreach/internal/domain/entity"
	"adreach/internal/domain/repository"
	"adreach/internal/domain/service"
	"adreach/internal/errors"
	"adreach/internal/usecase"

	"go.uber.org/fx"
)

type maintenanceService struct {
	campaigns        usecase.CampaignUsecase
	campaignRepo     repository.CampaignRepository
	analyticsRepo    repository.AnalyticsRepository
	notifier         service.Notifier
	endingSoonWindow time.Duration
	location         *time.Location
	logger           *slog.Logger
	now              func() time.Time
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	Campaigns     usecase.CampaignUsecase
	CampaignRepo  repository.CampaignRepository
	AnalyticsRepo repository.AnalyticsRepository
	Notifier      service.Notifier
	Config        *config.Config
	Logger        *slog.Logger
}

// NewMaintenanceService creates the scheduled sweeps.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		campaigns:        params.Campaigns,
		campaignRepo:     params.CampaignRepo,
		analyticsRepo:    params.AnalyticsRepo,
		notifier:         params.Notifier,
		endingSoonWindow: params.Config.Campaign.EndingSoonWindow,
		location:         loadLocation(params.Config.Analytics.Timezone),
		logger:           params.Logger,
		now:              time.Now,
	}
}

// CheckAllRunning checks every running campaign. A failing campaign is logged and skipped.
func (s *maintenanceService) CheckAllRunning(ctx context.Context) (int, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	ids, err := s.campaignRepo.ListIDsByStatus(ctx, entity.CampaignStatusRunning)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list running campaigns")
	}

	completed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return completed, errors.WithStack(err)
		}

		result, err := s.campaigns.CheckStatus(ctx, id)
		if err != nil {
			logger.Error("Campaign status check failed", slog.Any("campaignID", id), slog.Any("error", err))

			continue
		}
		if result.Completed {
			completed++
		}
	}
	logger.Info("Checked running campaigns", slog.Int("checked", len(ids)), slog.Int("completed", completed))

	return completed, nil
}

func (s *maintenanceService) RecomputeAllCTR(ctx context.Context) (int64, error) {
	updated, err := s.campaignRepo.RecomputeAllCTR(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to recompute ctr")
	}

	return updated, nil
}

// SendDailyPerformanceSummaries reports yesterday's traffic to each vendor that had any.
func (s *maintenanceService) SendDailyPerformanceSummaries(ctx context.Context) (int, error) {
	today := entity.StartOfDay(s.now(), s.location)
	yesterday := today.AddDate(0, 0, -1)

	activity, err := s.analyticsRepo.VendorActivity(ctx, yesterday, today)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load vendor activity")
	}

	sent := 0
	for _, a := range activity {
		if a.Impressions == 0 && a.Clicks == 0 {
			continue
		}
		s.notifier.Notify(ctx, a.VendorID, entity.NotificationMessage{
			Type:  entity.NotificationCampaignPerformance,
			Title: "Daily Performance Summary",
			Message: fmt.Sprintf("Yesterday your campaigns received %d impressions and %d clicks",
				a.Impressions, a.Clicks),
			Data: map[string]any{
				"date":        yesterday.Format(entity.DateLayout),
				"impressions": a.Impressions,
				"clicks":      a.Clicks,
			},
		})
		sent++
	}

	return sent, nil
}

// NotifyEndingSoon warns vendors whose running campaigns end within the configured window.
func (s *maintenanceService) NotifyEndingSoon(ctx context.Context) (int, error) {
	now := s.now()

	campaigns, err := s.campaignRepo.ListRunningEndingBetween(ctx, now, now.Add(s.endingSoonWindow))
	if err != nil {
		return 0, errors.Wrap(err, "failed to list campaigns ending soon")
	}

	for _, c := range campaigns {
		days := entity.DaysRemaining(now, c.EndDate)
		s.notifier.Notify(ctx, c.VendorID, entity.NotificationMessage{
			Type:    entity.NotificationCampaignEndingSoon,
			Title:   "Campaign Ending Soon",
			Message: fmt.Sprintf("Campaign %q ends in %d day(s)", c.Title, days),
			Data: map[string]any{
				"campaign_id":    c.ID.String(),
				"days_remaining": days,
			},
		})
	}

	return len(campaigns), nil
}
