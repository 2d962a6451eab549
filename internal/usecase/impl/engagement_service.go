package impl

import (
	"context"
	"fmt"
	"log/slog"
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
)

type engagementService struct {
	txManager      repository.TransactionManager
	campaignRepo   repository.CampaignRepository
	engagementRepo repository.EngagementRepository
	userRepo       repository.UserRepository
	gate           service.ImpressionGate
	ipLocator      service.IPLocator
	notifier       service.Notifier
	metrics        service.EngagementMetrics
	lifecycle      lifecycleChecker
	costPerClick   decimal.Decimal
	dedupWindow    time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// EngagementServiceParams holds dependencies for EngagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CampaignRepo   repository.CampaignRepository
	EngagementRepo repository.EngagementRepository
	UserRepo       repository.UserRepository
	Gate           service.ImpressionGate
	IPLocator      service.IPLocator
	Notifier       service.Notifier
	Metrics        service.EngagementMetrics
	Config         *config.Config
	Logger         *slog.Logger
}

// NewEngagementService creates the engagement recorder.
func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	return &engagementService{
		txManager:      params.TxManager,
		campaignRepo:   params.CampaignRepo,
		engagementRepo: params.EngagementRepo,
		userRepo:       params.UserRepo,
		gate:           params.Gate,
		ipLocator:      params.IPLocator,
		notifier:       params.Notifier,
		metrics:        params.Metrics,
		lifecycle: lifecycleChecker{
			lowBudgetRatio: params.Config.Campaign.LowBudgetRatioValue(),
			metrics:        params.Metrics,
		},
		costPerClick: params.Config.Campaign.CostPerClickAmount(),
		dedupWindow:  params.Config.Campaign.ImpressionDedupWindow,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (s *engagementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ensureActiveUser rejects banned accounts.
func (s *engagementService) ensureActiveUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}
	if user.IsBanned() {
		return domainerrors.ErrUserBanned
	}

	return nil
}

// ToggleReaction deletes the singleton row if present, otherwise inserts it. The counter
// moves by exactly the number of rows changed.
func (s *engagementService) ToggleReaction(ctx context.Context, kind entity.ReactionKind, campaignID, userID uuid.UUID) (*usecase.ToggleResult, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown reaction %q", kind))
	}
	if err := s.ensureActiveUser(ctx, userID); err != nil {
		return nil, err
	}

	var active bool
	err := retryOnConflict(ctx, s.logger, "toggle "+string(kind), func() error {
		return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			campaignRepo := factory.NewCampaignRepository()
			engagementRepo := factory.NewEngagementRepository()

			if _, err := campaignRepo.FindByID(ctx, campaignID); err != nil {
				return campaignErr(err, "failed to find campaign")
			}

			removed, err := engagementRepo.DeleteReaction(ctx, kind, campaignID, userID)
			if err != nil {
				return errors.Wrap(err, "failed to delete reaction")
			}
			if removed {
				active = false
				_, err = campaignRepo.IncrementCounter(ctx, campaignID, kind.Counter(), -1)

				return errors.Wrap(err, "failed to decrement counter")
			}

			inserted, err := engagementRepo.InsertReaction(ctx, kind, campaignID, userID)
			if err != nil {
				return errors.Wrap(err, "failed to insert reaction")
			}
			// A concurrent request inserted the row first; the pair is active either way.
			active = true
			if !inserted {
				return nil
			}
			_, err = campaignRepo.IncrementCounter(ctx, campaignID, kind.Counter(), 1)

			return errors.Wrap(err, "failed to increment counter")
		})
	})
	if err != nil {
		s.metrics.ObserveEvent(entity.EventKind(kind), service.OutcomeFailed)
		return nil, err
	}

	outcome := service.OutcomeRecorded
	if !active {
		outcome = service.OutcomeRemoved
	}
	s.metrics.ObserveEvent(entity.EventKind(kind), outcome)
	s.log(ctx).Debug("Reaction toggled",
		slog.String("kind", string(kind)), slog.Any("campaignID", campaignID), slog.Bool("active", active))

	return &usecase.ToggleResult{Kind: kind, Action: kind.Action(active), Active: active}, nil
}

// Share appends a share; every share counts.
func (s *engagementService) Share(ctx context.Context, campaignID, userID uuid.UUID) (*usecase.ShareResult, error) {
	if err := s.ensureActiveUser(ctx, userID); err != nil {
		return nil, err
	}

	var shares int64
	err := retryOnConflict(ctx, s.logger, "share", func() error {
		return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			campaignRepo := factory.NewCampaignRepository()
			if _, err := campaignRepo.FindByID(ctx, campaignID); err != nil {
				return campaignErr(err, "failed to find campaign")
			}

			event := &entity.EngagementEvent{
				ID:         uuid.New(),
				Kind:       entity.EventShare,
				CampaignID: campaignID,
				UserID:     userID,
				CreatedAt:  s.now(),
			}
			if err := factory.NewEngagementRepository().InsertEvent(ctx, event); err != nil {
				return errors.Wrap(err, "failed to insert share")
			}

			var err error
			shares, err = campaignRepo.IncrementCounter(ctx, campaignID, entity.CounterShares, 1)

			return errors.Wrap(err, "failed to increment share count")
		})
	})
	if err != nil {
		s.metrics.ObserveEvent(entity.EventShare, service.OutcomeFailed)
		return nil, err
	}
	s.metrics.ObserveEvent(entity.EventShare, service.OutcomeRecorded)

	return &usecase.ShareResult{ShareCount: shares}, nil
}

// RecordImpression counts one impression per (campaign, user) per dedup window. The gate
// filters repeats cheaply; the store re-checks under an advisory lock.
func (s *engagementService) RecordImpression(ctx context.Context, campaignID, userID uuid.UUID, meta entity.EventMeta) (*usecase.ImpressionResult, error) {
	if err := s.ensureActiveUser(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.campaignRepo.FindByID(ctx, campaignID); err != nil {
		return nil, campaignErr(err, "failed to find campaign")
	}

	acquired, err := s.gate.Acquire(ctx, campaignID, userID, s.dedupWindow)
	if err != nil {
		// The store check still dedups; the gate is only an optimization.
		s.log(ctx).Warn("Impression gate unavailable", slog.Any("error", err))
		acquired = true
	} else if !acquired {
		s.metrics.ObserveEvent(entity.EventImpression, service.OutcomeDuplicate)
		return &usecase.ImpressionResult{Recorded: false}, nil
	}

	now := s.now()
	event := &entity.EngagementEvent{
		ID:         uuid.New(),
		Kind:       entity.EventImpression,
		CampaignID: campaignID,
		UserID:     userID,
		Location:   s.enrichLocation(ctx, meta),
		DeviceType: meta.DeviceType,
		CreatedAt:  now,
	}

	var inserted bool
	err = retryOnConflict(ctx, s.logger, "impression", func() error {
		return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			var err error
			inserted, err = factory.NewEngagementRepository().InsertImpressionIfAbsent(ctx, event, now.Add(-s.dedupWindow))
			if err != nil {
				return campaignErr(err, "failed to insert impression")
			}
			if !inserted {
				return nil
			}
			_, err = factory.NewCampaignRepository().IncrementCounter(ctx, campaignID, entity.CounterImpressions, 1)

			return errors.Wrap(err, "failed to increment impression count")
		})
	})
	if err != nil {
		// A cancelled request must still free the gate for the next attempt.
		if releaseErr := s.gate.Release(context.WithoutCancel(ctx), campaignID, userID); releaseErr != nil {
			s.log(ctx).Warn("Failed to release impression gate", slog.Any("error", releaseErr))
		}
		s.metrics.ObserveEvent(entity.EventImpression, service.OutcomeFailed)

		return nil, err
	}

	if inserted {
		s.metrics.ObserveEvent(entity.EventImpression, service.OutcomeRecorded)
	} else {
		s.metrics.ObserveEvent(entity.EventImpression, service.OutcomeDuplicate)
	}

	return &usecase.ImpressionResult{Recorded: inserted}, nil
}

// RecordClick appends the click, charges the campaign and runs the lifecycle check in
// one transaction, so a debit never commits without its status check.
func (s *engagementService) RecordClick(ctx context.Context, campaignID, userID uuid.UUID, meta entity.EventMeta) (*usecase.ClickResult, error) {
	if err := s.ensureActiveUser(ctx, userID); err != nil {
		return nil, err
	}

	location := s.enrichLocation(ctx, meta)

	var (
		result  *usecase.ClickResult
		outcome *lifecycleOutcome
	)
	err := retryOnConflict(ctx, s.logger, "click", func() error {
		return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			campaignRepo := factory.NewCampaignRepository()
			now := s.now()

			campaign, err := campaignRepo.FindByIDForUpdate(ctx, campaignID)
			if err != nil {
				return campaignErr(err, "failed to lock campaign")
			}

			event := &entity.EngagementEvent{
				ID:         uuid.New(),
				Kind:       entity.EventClick,
				CampaignID: campaignID,
				UserID:     userID,
				Location:   location,
				DeviceType: meta.DeviceType,
				CreatedAt:  now,
			}
			if err := factory.NewEngagementRepository().InsertEvent(ctx, event); err != nil {
				return errors.Wrap(err, "failed to insert click")
			}

			clicks, err := campaignRepo.IncrementCounter(ctx, campaignID, entity.CounterClicks, 1)
			if err != nil {
				return errors.Wrap(err, "failed to increment click count")
			}

			snapshot, err := campaignRepo.Debit(ctx, campaignID, s.costPerClick)
			if err != nil {
				return errors.Wrap(err, "failed to debit campaign")
			}
			campaign.CurrentSpending = snapshot.CurrentSpending
			campaign.RemainingSpending = snapshot.RemainingSpending

			outcome, err = s.lifecycle.apply(ctx, campaignRepo, campaign, now)
			if err != nil {
				return err
			}

			result = &usecase.ClickResult{
				ClickCount:        clicks,
				CurrentSpending:   snapshot.CurrentSpending,
				RemainingSpending: snapshot.RemainingSpending,
				Status:            campaign.Status,
			}

			return nil
		})
	})
	if err != nil {
		s.metrics.ObserveEvent(entity.EventClick, service.OutcomeFailed)
		return nil, err
	}

	s.metrics.ObserveEvent(entity.EventClick, service.OutcomeRecorded)
	s.metrics.ObserveDebit(s.costPerClick.InexactFloat64())
	outcome.send(ctx, s.notifier, s.logger)

	return result, nil
}

// RecordConversion appends the conversion and tells the vendor about it.
func (s *engagementService) RecordConversion(ctx context.Context, campaignID, userID uuid.UUID, input usecase.ConversionInput) (*entity.Conversion, error) {
	if err := s.ensureActiveUser(ctx, userID); err != nil {
		return nil, err
	}

	conversionType := input.Type
	if conversionType == "" {
		conversionType = entity.DefaultConversionType
	}
	conversion := &entity.Conversion{
		ID:         uuid.New(),
		CampaignID: campaignID,
		UserID:     userID,
		Amount:     input.Amount,
		Type:       conversionType,
		Metadata:   input.Metadata,
		CreatedAt:  s.now(),
	}

	var campaign *entity.Campaign
	err := retryOnConflict(ctx, s.logger, "conversion", func() error {
		return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			campaignRepo := factory.NewCampaignRepository()

			var err error
			campaign, err = campaignRepo.FindByID(ctx, campaignID)
			if err != nil {
				return campaignErr(err, "failed to find campaign")
			}
			if err := factory.NewEngagementRepository().InsertConversion(ctx, conversion); err != nil {
				return errors.Wrap(err, "failed to insert conversion")
			}
			_, err = campaignRepo.IncrementCounter(ctx, campaignID, entity.CounterConversions, 1)

			return errors.Wrap(err, "failed to increment conversion count")
		})
	})
	if err != nil {
		s.metrics.ObserveEvent(entity.EventConversion, service.OutcomeFailed)
		return nil, err
	}
	s.metrics.ObserveEvent(entity.EventConversion, service.OutcomeRecorded)

	data := map[string]any{
		"campaign_id":     campaignID.String(),
		"conversion_id":   conversion.ID.String(),
		"conversion_type": conversion.Type,
	}
	if conversion.Amount != nil {
		data["amount"] = conversion.Amount.StringFixed(2)
	}
	s.notifier.Notify(ctx, campaign.VendorID, entity.NotificationMessage{
		Type:    entity.NotificationNewConversion,
		Title:   "New Conversion",
		Message: fmt.Sprintf("Campaign %q recorded a new %s conversion", campaign.Title, conversion.Type),
		Data:    data,
	})

	return conversion, nil
}

// GetEngagementStatus returns the user's toggles on one campaign.
func (s *engagementService) GetEngagementStatus(ctx context.Context, campaignID, userID uuid.UUID) (*entity.ReactionFlags, error) {
	if _, err := s.campaignRepo.FindByID(ctx, campaignID); err != nil {
		return nil, campaignErr(err, "failed to find campaign")
	}

	set, err := s.engagementRepo.ReactionsFor(ctx, userID, []uuid.UUID{campaignID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reactions")
	}
	flags := set.Flags(campaignID)

	return &flags, nil
}

// enrichLocation fills a missing city from the client IP. Lookup failures only lose the city.
func (s *engagementService) enrichLocation(ctx context.Context, meta entity.EventMeta) *entity.EventLocation {
	if !meta.NeedsCity() {
		return meta.Location
	}

	found, err := s.ipLocator.Locate(meta.ClientIP)
	if err != nil {
		s.log(ctx).Debug("IP lookup failed", slog.Any("error", err))
		return meta.Location
	}
	if found == nil {
		return meta.Location
	}
	if meta.Location == nil {
		return found
	}

	merged := *meta.Location
	merged.City = found.City
	if merged.State == "" {
		merged.State = found.State
	}
	if merged.Country == "" {
		merged.Country = found.Country
	}

	return &merged
}
