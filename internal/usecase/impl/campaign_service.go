package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"adreach/config"
	deliverycontext "adreach/internal/delivery/context"
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
	defaultTransactionLimit = 10
	maxTransactionLimit     = 100
)

type campaignService struct {
	txManager     repository.TransactionManager
	campaignRepo  repository.CampaignRepository
	commentRepo   repository.CommentRepository
	paymentRepo   repository.PaymentTransactionRepository
	analyticsRepo repository.AnalyticsRepository
	geocoder      service.Geocoder
	media         service.MediaStorage
	notifier      service.Notifier
	qrcode        service.QRCodeService
	lifecycle     lifecycleChecker
	rules         targetingRules
	location      *time.Location
	logger        *slog.Logger
	now           func() time.Time
}

// CampaignServiceParams holds dependencies for CampaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	CampaignRepo  repository.CampaignRepository
	CommentRepo   repository.CommentRepository
	PaymentRepo   repository.PaymentTransactionRepository
	AnalyticsRepo repository.AnalyticsRepository
	Geocoder      service.Geocoder
	Media         service.MediaStorage
	Notifier      service.Notifier
	QRCode        service.QRCodeService
	Metrics       service.EngagementMetrics
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCampaignService creates the campaign management service.
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		txManager:     params.TxManager,
		campaignRepo:  params.CampaignRepo,
		commentRepo:   params.CommentRepo,
		paymentRepo:   params.PaymentRepo,
		analyticsRepo: params.AnalyticsRepo,
		geocoder:      params.Geocoder,
		media:         params.Media,
		notifier:      params.Notifier,
		qrcode:        params.QRCode,
		lifecycle: lifecycleChecker{
			lowBudgetRatio: params.Config.Campaign.LowBudgetRatioValue(),
			metrics:        params.Metrics,
		},
		rules:    newTargetingRules(params.Config.Campaign),
		location: loadLocation(params.Config.Analytics.Timezone),
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (s *campaignService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Create validates the targeting, resolves coordinates and stores the campaign awaiting payment.
func (s *campaignService) Create(ctx context.Context, vendorID uuid.UUID, input usecase.CreateCampaignInput) (*entity.Campaign, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := s.rules.validateBudget(input.Budget); err != nil {
		return nil, err
	}
	if err := validateDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	radius := s.rules.defaultRadiusKm
	if input.RadiusKm != nil {
		radius = *input.RadiusKm
	}
	if err := s.rules.validateRadius(radius); err != nil {
		return nil, err
	}
	if err := s.rules.validateAges(input.AgeMin, input.AgeMax); err != nil {
		return nil, err
	}

	target, err := resolveTarget(ctx, s.geocoder, s.rules, input.TargetedLocation, input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	now := s.now()
	campaign := &entity.Campaign{
		ID:                uuid.New(),
		VendorID:          vendorID,
		Title:             strings.TrimSpace(input.Title),
		Description:       input.Description,
		Media:             input.Media,
		TargetedLocation:  input.TargetedLocation,
		TargetLatitude:    &target.Lat,
		TargetLongitude:   &target.Lon,
		TargetRadiusKm:    radius,
		TargetedAgeMin:    input.AgeMin,
		TargetedAgeMax:    input.AgeMax,
		Budget:            input.Budget,
		CurrentSpending:   decimal.Zero,
		RemainingSpending: input.Budget,
		Status:            entity.CampaignStatusPaused,
		PaymentStatus:     entity.PaymentStatusPending,
		GatewayOrderID:    "order_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		CTR:               decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if campaign.Media == nil {
		campaign.Media = []entity.CampaignMedia{}
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, errors.Wrap(err, "failed to create campaign")
	}
	s.log(ctx).Info("Campaign created", slog.Any("campaignID", campaign.ID), slog.Any("vendorID", vendorID))

	return campaign, nil
}

// Update applies a partial update while holding the campaign row lock. The budget is
// locked once paid and completed campaigns cannot change.
func (s *campaignService) Update(ctx context.Context, vendorID, campaignID uuid.UUID, input usecase.UpdateCampaignInput) (*entity.Campaign, error) {
	var (
		campaign *entity.Campaign
		released []string
	)
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		campaignRepo := factory.NewCampaignRepository()

		var err error
		campaign, err = campaignRepo.FindByIDForUpdate(ctx, campaignID)
		if err != nil {
			return campaignErr(err, "failed to lock campaign")
		}
		if !campaign.IsOwnedBy(vendorID) {
			return domainerrors.ErrNotCampaignOwner
		}
		if released, err = s.applyUpdate(ctx, campaign, input); err != nil {
			return err
		}
		campaign.UpdatedAt = s.now()

		return campaignErr(campaignRepo.Update(ctx, campaign), "failed to update campaign")
	})
	if err != nil {
		return nil, err
	}
	s.releaseMedia(ctx, campaignID, released)

	return campaign, nil
}

// applyUpdate copies the set fields of input onto campaign and returns the storage ids
// of media the update drops.
func (s *campaignService) applyUpdate(ctx context.Context, campaign *entity.Campaign, input usecase.UpdateCampaignInput) ([]string, error) {
	if campaign.IsCompleted() {
		return nil, domainerrors.ErrCampaignCompleted
	}

	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return nil, err
		}
		campaign.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		campaign.Description = *input.Description
	}
	if input.RadiusKm != nil {
		if err := s.rules.validateRadius(*input.RadiusKm); err != nil {
			return nil, err
		}
		campaign.TargetRadiusKm = *input.RadiusKm
	}
	if input.AgeMin != nil {
		campaign.TargetedAgeMin = input.AgeMin
	}
	if input.AgeMax != nil {
		campaign.TargetedAgeMax = input.AgeMax
	}
	if err := s.rules.validateAges(campaign.TargetedAgeMin, campaign.TargetedAgeMax); err != nil {
		return nil, err
	}
	if input.StartDate != nil {
		campaign.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		campaign.EndDate = *input.EndDate
	}
	if err := validateDates(campaign.StartDate, campaign.EndDate); err != nil {
		return nil, err
	}

	if input.Budget != nil && !input.Budget.Equal(campaign.Budget) {
		if campaign.IsPaid() {
			return nil, domainerrors.ErrBudgetLocked
		}
		if err := s.rules.validateBudget(*input.Budget); err != nil {
			return nil, err
		}
		campaign.Budget = *input.Budget
		campaign.RemainingSpending = input.Budget.Sub(campaign.CurrentSpending)
	}

	if input.TargetedLocation != nil || input.Latitude != nil || input.Longitude != nil {
		location := campaign.TargetedLocation
		if input.TargetedLocation != nil {
			location = *input.TargetedLocation
		}
		target, err := resolveTarget(ctx, s.geocoder, s.rules, location, input.Latitude, input.Longitude)
		if err != nil {
			return nil, err
		}
		campaign.TargetedLocation = location
		campaign.TargetLatitude = &target.Lat
		campaign.TargetLongitude = &target.Lon
	}

	var released []string
	if input.Media != nil {
		released = replacedStorageIDs(campaign.Media, *input.Media)
		campaign.Media = *input.Media
	}

	return released, nil
}

// replacedStorageIDs lists the storage ids present in before but not in after.
func replacedStorageIDs(before, after []entity.CampaignMedia) []string {
	kept := make(map[string]struct{}, len(after))
	for _, m := range after {
		kept[m.StorageID] = struct{}{}
	}

	var released []string
	for _, m := range before {
		if _, ok := kept[m.StorageID]; !ok && m.StorageID != "" {
			released = append(released, m.StorageID)
		}
	}

	return released
}

func (s *campaignService) releaseMedia(ctx context.Context, campaignID uuid.UUID, storageIDs []string) {
	if len(storageIDs) == 0 {
		return
	}
	if err := s.media.Delete(ctx, storageIDs); err != nil {
		s.log(ctx).Error("Failed to release campaign media",
			slog.Any("campaignID", campaignID), slog.Int("count", len(storageIDs)), slog.Any("error", err))
	}
}

// ownedCampaign loads a campaign the actor may manage. Admins may manage any campaign.
func (s *campaignService) ownedCampaign(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID) (*entity.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, campaignErr(err, "failed to find campaign")
	}
	if !actor.IsAdmin() && !campaign.IsOwnedBy(actor.UserID) {
		return nil, domainerrors.ErrNotCampaignOwner
	}

	return campaign, nil
}

// Get returns the campaign with its comment tree and per-city split.
func (s *campaignService) Get(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID) (*usecase.CampaignDetails, error) {
	campaign, err := s.ownedCampaign(ctx, actor, campaignID)
	if err != nil {
		return nil, err
	}

	var (
		comments    []*entity.Comment
		impressions map[string]int64
		clicks      map[string]int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, err = s.commentRepo.ListByCampaign(gctx, campaignID)
		return errors.Wrap(err, "failed to list comments")
	})
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

	return &usecase.CampaignDetails{
		Campaign:      campaign,
		Comments:      entity.BuildCommentTree(comments),
		LocationStats: entity.MergeLocationStats(impressions, clicks),
	}, nil
}

// ListVendorCampaigns returns the vendor's campaigns, newest first.
func (s *campaignService) ListVendorCampaigns(ctx context.Context, vendorID uuid.UUID, status *entity.CampaignStatus) ([]*entity.Campaign, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", *status))
	}

	campaigns, err := s.campaignRepo.ListByVendor(ctx, vendorID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor campaigns")
	}

	return campaigns, nil
}

// VendorStats returns every campaign of the vendor with totals.
func (s *campaignService) VendorStats(ctx context.Context, vendorID uuid.UUID) (*usecase.VendorCampaigns, error) {
	campaigns, err := s.campaignRepo.ListByVendor(ctx, vendorID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor campaigns")
	}

	return &usecase.VendorCampaigns{
		Campaigns: campaigns,
		Summary:   entity.SummarizeVendorCampaigns(campaigns),
	}, nil
}

// ConfirmPayment moves PAUSED+PENDING to RUNNING+SUCCESS and records the payment in the
// same transaction.
func (s *campaignService) ConfirmPayment(ctx context.Context, confirmation usecase.PaymentConfirmation) (*entity.Campaign, error) {
	var campaign *entity.Campaign
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		campaignRepo := factory.NewCampaignRepository()

		var err error
		campaign, err = campaignRepo.FindByIDForUpdate(ctx, confirmation.CampaignID)
		if err != nil {
			return campaignErr(err, "failed to lock campaign")
		}
		if campaign.GatewayOrderID != confirmation.GatewayOrderID {
			return domainerrors.ErrValidationFailed.WithDetails("gateway order id does not match the campaign")
		}

		paid, err := campaignRepo.MarkPaid(ctx, campaign.ID, confirmation.GatewayPaymentID)
		if err != nil {
			return errors.Wrap(err, "failed to mark campaign paid")
		}
		if !paid {
			return domainerrors.ErrCampaignNotPending
		}

		tx := &entity.PaymentTransaction{
			ID:               uuid.New(),
			UserID:           campaign.VendorID,
			CampaignID:       campaign.ID,
			Amount:           campaign.Budget,
			Type:             entity.TransactionCampaignPayment,
			Status:           entity.TransactionSuccess,
			GatewayOrderID:   confirmation.GatewayOrderID,
			GatewayPaymentID: confirmation.GatewayPaymentID,
			GatewaySignature: confirmation.GatewaySignature,
			Description:      fmt.Sprintf("Payment for campaign %q", campaign.Title),
			CreatedAt:        s.now(),
		}
		if err := factory.NewPaymentTransactionRepository().Create(ctx, tx); err != nil {
			return errors.Wrap(err, "failed to record payment transaction")
		}

		campaign.Status = entity.CampaignStatusRunning
		campaign.PaymentStatus = entity.PaymentStatusSuccess
		campaign.GatewayPaymentID = confirmation.GatewayPaymentID

		return nil
	})
	if err != nil {
		return nil, err
	}

	data := map[string]any{"campaign_id": campaign.ID.String(), "amount": campaign.Budget.StringFixed(2)}
	s.notifier.Notify(ctx, campaign.VendorID, entity.NotificationMessage{
		Type:    entity.NotificationPaymentSuccess,
		Title:   "Payment Successful",
		Message: fmt.Sprintf("Payment of %s received for campaign %q", campaign.Budget.StringFixed(2), campaign.Title),
		Data:    data,
	})
	s.notifier.Notify(ctx, campaign.VendorID, entity.NotificationMessage{
		Type:    entity.NotificationCampaignStarted,
		Title:   "Campaign Started",
		Message: fmt.Sprintf("Campaign %q is now live", campaign.Title),
		Data:    map[string]any{"campaign_id": campaign.ID.String()},
	})
	s.log(ctx).Info("Campaign payment confirmed", slog.Any("campaignID", campaign.ID))

	return campaign, nil
}

// Pause stops a running campaign.
func (s *campaignService) Pause(ctx context.Context, vendorID, campaignID uuid.UUID) (*entity.Campaign, error) {
	return s.changeStatus(ctx, vendorID, campaignID, entity.CampaignStatusRunning, entity.CampaignStatusPaused)
}

// Resume restarts a paused, paid campaign.
func (s *campaignService) Resume(ctx context.Context, vendorID, campaignID uuid.UUID) (*entity.Campaign, error) {
	return s.changeStatus(ctx, vendorID, campaignID, entity.CampaignStatusPaused, entity.CampaignStatusRunning)
}

func (s *campaignService) changeStatus(
	ctx context.Context,
	vendorID, campaignID uuid.UUID,
	from, to entity.CampaignStatus,
) (*entity.Campaign, error) {
	var (
		campaign *entity.Campaign
		outcome  *lifecycleOutcome
	)
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		campaignRepo := factory.NewCampaignRepository()

		var err error
		campaign, err = campaignRepo.FindByIDForUpdate(ctx, campaignID)
		if err != nil {
			return campaignErr(err, "failed to lock campaign")
		}
		if !campaign.IsOwnedBy(vendorID) {
			return domainerrors.ErrNotCampaignOwner
		}
		if campaign.IsCompleted() {
			return domainerrors.ErrCampaignCompleted
		}
		if campaign.Status != from {
			return domainerrors.ErrInvalidTransition.WithDetails(
				fmt.Sprintf("campaign is %s, expected %s", campaign.Status, from))
		}
		if to == entity.CampaignStatusRunning && !campaign.IsPaid() {
			return domainerrors.ErrInvalidTransition.WithDetails("campaign payment is pending")
		}

		moved, err := campaignRepo.TransitionStatus(ctx, campaignID, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to change campaign status")
		}
		if !moved {
			return domainerrors.ErrTransientConflict
		}
		campaign.Status = to

		// A resumed campaign may already be over; complete it right away.
		outcome, err = s.lifecycle.apply(ctx, campaignRepo, campaign, s.now())

		return err
	})
	if err != nil {
		return nil, err
	}
	outcome.send(ctx, s.notifier, s.logger)
	s.log(ctx).Info("Campaign status changed",
		slog.Any("campaignID", campaignID), slog.String("status", string(campaign.Status)))

	return campaign, nil
}

// Delete removes the campaign, its events and comments in one transaction, then releases media.
func (s *campaignService) Delete(ctx context.Context, actor usecase.Actor, campaignID uuid.UUID) error {
	var campaign *entity.Campaign
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		campaignRepo := factory.NewCampaignRepository()

		var err error
		campaign, err = campaignRepo.FindByIDForUpdate(ctx, campaignID)
		if err != nil {
			return campaignErr(err, "failed to lock campaign")
		}
		if !actor.IsAdmin() {
			if !campaign.IsOwnedBy(actor.UserID) {
				return domainerrors.ErrNotCampaignOwner
			}
			if campaign.IsCompleted() {
				return domainerrors.ErrCampaignCompleted
			}
		}

		if err := factory.NewEngagementRepository().DeleteByCampaign(ctx, campaignID); err != nil {
			return errors.Wrap(err, "failed to delete campaign events")
		}
		if err := factory.NewCommentRepository().DeleteByCampaign(ctx, campaignID); err != nil {
			return errors.Wrap(err, "failed to delete campaign comments")
		}

		return errors.Wrap(campaignRepo.Delete(ctx, campaignID), "failed to delete campaign")
	})
	if err != nil {
		return err
	}

	s.releaseMedia(ctx, campaignID, campaign.StorageIDs())
	s.log(ctx).Info("Campaign deleted", slog.Any("campaignID", campaignID), slog.Any("actor", actor.UserID))

	return nil
}

// CheckStatus evaluates one campaign under its row lock.
func (s *campaignService) CheckStatus(ctx context.Context, campaignID uuid.UUID) (*usecase.StatusCheckResult, error) {
	var outcome *lifecycleOutcome
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		campaignRepo := factory.NewCampaignRepository()

		campaign, err := campaignRepo.FindByIDForUpdate(ctx, campaignID)
		if err != nil {
			return campaignErr(err, "failed to lock campaign")
		}
		outcome, err = s.lifecycle.apply(ctx, campaignRepo, campaign, s.now())

		return err
	})
	if err != nil {
		return nil, err
	}
	outcome.send(ctx, s.notifier, s.logger)

	return &outcome.result, nil
}

// ShareQR renders the share QR code of a campaign.
func (s *campaignService) ShareQR(ctx context.Context, campaignID uuid.UUID) ([]byte, error) {
	if _, err := s.campaignRepo.FindByID(ctx, campaignID); err != nil {
		return nil, campaignErr(err, "failed to find campaign")
	}

	png, err := s.qrcode.GenerateCampaignQR(campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// ListTransactions returns a page of the vendor's payments with their total spending.
func (s *campaignService) ListTransactions(ctx context.Context, vendorID uuid.UUID, page usecase.Page) (*usecase.TransactionPage, error) {
	page, offset := page.Normalize(defaultTransactionLimit, maxTransactionLimit)

	txs, total, err := s.paymentRepo.ListByUser(ctx, vendorID, offset, page.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}
	spending, err := s.paymentRepo.SumUserSpending(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum spending")
	}

	return &usecase.TransactionPage{
		Transactions:  txs,
		Page:          page.Page,
		Limit:         page.Limit,
		TotalCount:    total,
		TotalPages:    usecase.TotalPages(total, page.Limit),
		TotalSpending: spending,
	}, nil
}

// TransactionStats summarizes the vendor's payment history.
func (s *campaignService) TransactionStats(ctx context.Context, vendorID uuid.UUID) (*entity.TransactionStats, error) {
	txs, err := s.paymentRepo.ListAllByUser(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}
	stats := entity.SummarizeTransactions(txs, s.location)

	return &stats, nil
}
