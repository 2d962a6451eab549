package impl

import (
	"context"
	"log/slog"

	deliverycontext "adreach/internal/delivery/context"
	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	"adreach/internal/errors"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultAdminLimit = 20
	maxAdminLimit     = 100
	adminWindowDays   = 7
)

type adminService struct {
	campaignRepo repository.CampaignRepository
	userRepo     repository.UserRepository
	analytics    usecase.AnalyticsUsecase
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	CampaignRepo repository.CampaignRepository
	UserRepo     repository.UserRepository
	Analytics    usecase.AnalyticsUsecase
	Logger       *slog.Logger
}

// NewAdminService creates the moderation service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		campaignRepo: params.CampaignRepo,
		userRepo:     params.UserRepo,
		analytics:    params.Analytics,
		logger:       params.Logger,
	}
}

func (s *adminService) ListCampaigns(ctx context.Context, page usecase.Page) (*usecase.AdminCampaignPage, error) {
	page, offset := page.Normalize(defaultAdminLimit, maxAdminLimit)

	campaigns, total, err := s.campaignRepo.List(ctx, offset, page.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return &usecase.AdminCampaignPage{
		Campaigns:  campaigns,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalCount: total,
		TotalPages: usecase.TotalPages(total, page.Limit),
	}, nil
}

func (s *adminService) FlagCampaign(ctx context.Context, campaignID uuid.UUID, flagged bool) error {
	if err := s.campaignRepo.SetFlagged(ctx, campaignID, flagged); err != nil {
		return campaignErr(err, "failed to flag campaign")
	}
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Campaign moderation changed",
		slog.Any("campaignID", campaignID), slog.Bool("flagged", flagged))

	return nil
}

// BanUser toggles the active status. Admin accounts cannot be banned.
func (s *adminService) BanUser(ctx context.Context, userID uuid.UUID, banned bool) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}
	if user.Role == entity.RoleAdmin {
		return domainerrors.ErrForbidden.WithDetails("admins cannot be banned")
	}

	status := entity.ActiveStatusActive
	if banned {
		status = entity.ActiveStatusBanned
	}
	if err := s.userRepo.SetActiveStatus(ctx, userID, status); err != nil {
		return errors.Wrap(err, "failed to update user status")
	}
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("User status changed",
		slog.Any("userID", userID), slog.String("status", string(status)))

	return nil
}

// CampaignAnalytics returns today's snapshot and the trailing week of any campaign.
func (s *adminService) CampaignAnalytics(ctx context.Context, campaignID uuid.UUID) (*usecase.CampaignAnalytics, error) {
	actor := usecase.Actor{Role: entity.RoleAdmin}
	result := &usecase.CampaignAnalytics{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		result.Today, err = s.analytics.TodayStats(gctx, actor, campaignID)
		return err
	})
	g.Go(func() error {
		var err error
		result.Window, err = s.analytics.WindowStats(gctx, actor, campaignID, adminWindowDays)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
