package impl

import (
	"context"
	"testing"
	"time"

	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	"adreach/internal/domain/service"
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

// engagementFixtures holds all test dependencies for engagement service tests.
type engagementFixtures struct {
	service        *engagementService
	txManager      *mockRepo.MockTransactionManager
	campaignRepo   *mockRepo.MockCampaignRepository
	engagementRepo *mockRepo.MockEngagementRepository
	userRepo       *mockRepo.MockUserRepository
	gate           *mockSvc.MockImpressionGate
	ipLocator      *mockSvc.MockIPLocator
	notifier       *mockSvc.MockNotifier
	metrics        *mockSvc.MockEngagementMetrics
}

func createTestEngagementService(t *testing.T) engagementFixtures {
	fx := engagementFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		campaignRepo:   mockRepo.NewMockCampaignRepository(t),
		engagementRepo: mockRepo.NewMockEngagementRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		gate:           mockSvc.NewMockImpressionGate(t),
		ipLocator:      mockSvc.NewMockIPLocator(t),
		notifier:       mockSvc.NewMockNotifier(t),
		metrics:        mockSvc.NewMockEngagementMetrics(t),
	}
	fx.metrics.EXPECT().ObserveEvent(mock.Anything, mock.Anything).Maybe()
	fx.metrics.EXPECT().ObserveDebit(mock.Anything).Maybe()
	fx.metrics.EXPECT().ObserveTransition(mock.Anything, mock.Anything).Maybe()

	svc := NewEngagementService(EngagementServiceParams{
		TxManager:      fx.txManager,
		CampaignRepo:   fx.campaignRepo,
		EngagementRepo: fx.engagementRepo,
		UserRepo:       fx.userRepo,
		Gate:           fx.gate,
		IPLocator:      fx.ipLocator,
		Notifier:       fx.notifier,
		Metrics:        fx.metrics,
		Config:         testConfig(),
		Logger:         discardLogger(),
	}).(*engagementService)
	svc.now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

func (fx engagementFixtures) expectTx(t *testing.T) {
	expectTx(fx.txManager, txRepos{
		factory:    mockRepo.NewMockRepositoryFactory(t),
		campaign:   fx.campaignRepo,
		engagement: fx.engagementRepo,
	})
}

func (fx engagementFixtures) expectActiveUser(ctx context.Context, userID uuid.UUID) {
	fx.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleUser, ActiveStatus: entity.ActiveStatusActive}, nil)
}

func TestEngagementService_ToggleReaction(t *testing.T) {
	tests := []struct {
		name       string
		kind       entity.ReactionKind
		removed    bool
		delta      int64
		wantAction string
		wantActive bool
	}{
		{name: "like when absent", kind: entity.ReactionLike, removed: false, delta: 1, wantAction: "liked", wantActive: true},
		{name: "like when present", kind: entity.ReactionLike, removed: true, delta: -1, wantAction: "unliked", wantActive: false},
		{name: "dislike when present", kind: entity.ReactionDislike, removed: true, delta: -1, wantAction: "removed_dislike", wantActive: false},
		{name: "save when absent", kind: entity.ReactionSave, removed: false, delta: 1, wantAction: "saved", wantActive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestEngagementService(t)
			ctx := context.Background()
			userID := uuid.New()
			campaign := runningCampaign(uuid.New())

			fx.expectActiveUser(ctx, userID)
			fx.expectTx(t)
			fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
			fx.engagementRepo.EXPECT().DeleteReaction(ctx, tt.kind, campaign.ID, userID).Return(tt.removed, nil)
			if !tt.removed {
				fx.engagementRepo.EXPECT().InsertReaction(ctx, tt.kind, campaign.ID, userID).Return(true, nil)
			}
			fx.campaignRepo.EXPECT().IncrementCounter(ctx, campaign.ID, tt.kind.Counter(), tt.delta).Return(3, nil)

			result, err := fx.service.ToggleReaction(ctx, tt.kind, campaign.ID, userID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAction, result.Action)
			assert.Equal(t, tt.wantActive, result.Active)
		})
	}
}

func TestEngagementService_ToggleReaction_ConcurrentInsertLeavesCounter(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	campaign := runningCampaign(uuid.New())

	fx.expectActiveUser(ctx, userID)
	fx.expectTx(t)
	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.engagementRepo.EXPECT().DeleteReaction(ctx, entity.ReactionLove, campaign.ID, userID).Return(false, nil)
	fx.engagementRepo.EXPECT().InsertReaction(ctx, entity.ReactionLove, campaign.ID, userID).Return(false, nil)

	result, err := fx.service.ToggleReaction(ctx, entity.ReactionLove, campaign.ID, userID)
	require.NoError(t, err)
	assert.True(t, result.Active)
	fx.campaignRepo.AssertNotCalled(t, "IncrementCounter", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEngagementService_ToggleReaction_RetriesConflictOnce(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	campaign := runningCampaign(uuid.New())

	fx.expectActiveUser(ctx, userID)
	fx.expectTx(t)
	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.engagementRepo.EXPECT().DeleteReaction(ctx, entity.ReactionLike, campaign.ID, userID).
		Return(false, repository.ErrConflict).Once()
	fx.engagementRepo.EXPECT().DeleteReaction(ctx, entity.ReactionLike, campaign.ID, userID).
		Return(false, nil).Once()
	fx.engagementRepo.EXPECT().InsertReaction(ctx, entity.ReactionLike, campaign.ID, userID).Return(true, nil)
	fx.campaignRepo.EXPECT().IncrementCounter(ctx, campaign.ID, entity.CounterLikes, int64(1)).Return(1, nil)

	result, err := fx.service.ToggleReaction(ctx, entity.ReactionLike, campaign.ID, userID)
	require.NoError(t, err)
	assert.True(t, result.Active)
}

func TestEngagementService_ToggleReaction_SecondConflictIsTransient(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	campaign := runningCampaign(uuid.New())

	fx.expectActiveUser(ctx, userID)
	fx.expectTx(t)
	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.engagementRepo.EXPECT().DeleteReaction(ctx, entity.ReactionLike, campaign.ID, userID).
		Return(false, repository.ErrConflict).Twice()

	_, err := fx.service.ToggleReaction(ctx, entity.ReactionLike, campaign.ID, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTransientConflict)
}

func TestEngagementService_ToggleReaction_Errors(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		fx := createTestEngagementService(t)

		_, err := fx.service.ToggleReaction(context.Background(), entity.ReactionKind("wow"), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("banned user", func(t *testing.T) {
		fx := createTestEngagementService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).
			Return(&entity.User{ID: userID, ActiveStatus: entity.ActiveStatusBanned}, nil)

		_, err := fx.service.ToggleReaction(ctx, entity.ReactionLike, uuid.New(), userID)
		assert.ErrorIs(t, err, domainerrors.ErrUserBanned)
	})

	t.Run("campaign not found", func(t *testing.T) {
		fx := createTestEngagementService(t)
		ctx := context.Background()
		userID := uuid.New()
		campaignID := uuid.New()

		fx.expectActiveUser(ctx, userID)
		fx.expectTx(t)
		fx.campaignRepo.EXPECT().FindByID(ctx, campaignID).Return(nil, repository.ErrCampaignNotFound)

		_, err := fx.service.ToggleReaction(ctx, entity.ReactionLike, campaignID, userID)
		assert.ErrorIs(t, err, domainerrors.ErrCampaignNotFound)
	})
}

func TestEngagementService_Share(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	campaign := runningCampaign(uuid.New())

	fx.expectActiveUser(ctx, userID)
	fx.expectTx(t)
	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.engagementRepo.EXPECT().InsertEvent(ctx, mock.MatchedBy(func(e *entity.EngagementEvent) bool {
		return e.Kind == entity.EventShare && e.CampaignID == campaign.ID && e.UserID == userID
	})).Return(nil)
	fx.campaignRepo.EXPECT().IncrementCounter(ctx, campaign.ID, entity.CounterShares, int64(1)).Return(8, nil)

	result, err := fx.service.Share(ctx, campaign.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), result.ShareCount)
}

func TestEngagementService_RecordImpression(t *testing.T) {
	window := testConfig().Campaign.ImpressionDedupWindow

	t.Run("first impression is counted", func(t *testing.T) {
		fx := createTestEngagementService(t)
		ctx := context.Background()
		userID := uuid.New()
		campaign := runningCampaign(uuid.New())

		fx.expectActiveUser(ctx, userID)
		fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
		fx.gate.EXPECT().Acquire(ctx, campaign.ID, userID, window).Return(true, nil)
		fx.expectTx(t)
		fx.engagementRepo.EXPECT().
			InsertImpressionIfAbsent(ctx, mock.AnythingOfType("*entity.EngagementEvent"), fixedNow.Add(-window)).
			Return(true, nil)
		fx.campaignRepo.EXPECT().IncrementCounter(ctx, campaign.ID, entity.CounterImpressions, int64(1)).Return(1, nil)

		result, err := fx.service.RecordImpression(ctx, campaign.ID, userID, entity.EventMeta{DeviceType: "mobile"})
		require.NoError(t, err)
		assert.True(t, result.Recorded)
	})

	t.Run("gate rejects a repeat without touching the store", func(t *testing.T) {
		fx := createTestEngagementService(t)
		ctx := context.Background()
		userID := uuid.New()
		campaign := runningCampaign(uuid.New())

		fx.expectActiveUser(ctx, userID)
		fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
		fx.gate.EXPECT().Acquire(ctx, campaign.ID, userID, window).Return(false, nil)

		result, err := fx.service.RecordImpression(ctx, campaign.ID, userID, entity.EventMeta{})
		require.NoError(t, err)
		assert.False(t, result.Recorded)
	})

	t.Run("gate failure falls back to the store check", func(t *testing.T) {
		fx := createTestEngagementService(t)
		ctx := context.Background()
		userID := uuid.New()
		campaign := runningCampaign(uuid.New())

		fx.expectActiveUser(ctx, userID)
		fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
		fx.gate.EXPECT().Acquire(ctx, campaign.ID, userID, window).Return(false, errors.New("redis down"))
		fx.expectTx(t)
		fx.engagementRepo.EXPECT().
			InsertImpressionIfAbsent(ctx, mock.Anything, mock.Anything).
			Return(false, nil)

		result, err := fx.service.RecordImpression(ctx, campaign.ID, userID, entity.EventMeta{})
		require.NoError(t, err)
		assert.False(t, result.Recorded)
	})

	t.Run("failed transaction releases the gate", func(t *testing.T) {
		fx := createTestEngagementService(t)
		ctx := context.Background()
		userID := uuid.New()
		campaign := runningCampaign(uuid.New())

		fx.expectActiveUser(ctx, userID)
		fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
		fx.gate.EXPECT().Acquire(ctx, campaign.ID, userID, window).Return(true, nil)
		fx.expectTx(t)
		fx.engagementRepo.EXPECT().
			InsertImpressionIfAbsent(ctx, mock.Anything, mock.Anything).
			Return(false, errors.New("connection reset"))
		fx.gate.EXPECT().Release(mock.Anything, campaign.ID, userID).Return(nil)

		_, err := fx.service.RecordImpression(ctx, campaign.ID, userID, entity.EventMeta{})
		require.Error(t, err)
	})

	t.Run("gate is released even when the request is cancelled", func(t *testing.T) {
		fx := createTestEngagementService(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		userID := uuid.New()
		campaign := runningCampaign(uuid.New())

		fx.expectActiveUser(ctx, userID)
		fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
		fx.gate.EXPECT().Acquire(ctx, campaign.ID, userID, window).Return(true, nil)
		fx.expectTx(t)
		fx.engagementRepo.EXPECT().
			InsertImpressionIfAbsent(ctx, mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, *entity.EngagementEvent, time.Time) (bool, error) {
				cancel()

				return false, context.Canceled
			})
		fx.gate.EXPECT().
			Release(mock.MatchedBy(func(releaseCtx context.Context) bool {
				return releaseCtx.Err() == nil
			}), campaign.ID, userID).
			Return(nil)

		_, err := fx.service.RecordImpression(ctx, campaign.ID, userID, entity.EventMeta{})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("campaign deleted before the insert is not found", func(t *testing.T) {
		fx := createTestEngagementService(t)
		ctx := context.Background()
		userID := uuid.New()
		campaign := runningCampaign(uuid.New())

		fx.expectActiveUser(ctx, userID)
		fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
		fx.gate.EXPECT().Acquire(ctx, campaign.ID, userID, window).Return(true, nil)
		fx.expectTx(t)
		fx.engagementRepo.EXPECT().
			InsertImpressionIfAbsent(ctx, mock.Anything, mock.Anything).
			Return(false, repository.ErrCampaignNotFound)
		fx.gate.EXPECT().Release(mock.Anything, campaign.ID, userID).Return(nil)

		_, err := fx.service.RecordImpression(ctx, campaign.ID, userID, entity.EventMeta{})
		assert.ErrorIs(t, err, domainerrors.ErrCampaignNotFound)
	})

	t.Run("missing city is looked up from the client ip", func(t *testing.T) {
		fx := createTestEngagementService(t)
		ctx := context.Background()
		userID := uuid.New()
		campaign := runningCampaign(uuid.New())

		fx.expectActiveUser(ctx, userID)
		fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
		fx.gate.EXPECT().Acquire(ctx, campaign.ID, userID, window).Return(true, nil)
		fx.ipLocator.EXPECT().Locate("203.0.113.7").Return(&entity.EventLocation{City: "Pune", Country: "India"}, nil)
		fx.expectTx(t)
		fx.engagementRepo.EXPECT().
			InsertImpressionIfAbsent(ctx, mock.MatchedBy(func(e *entity.EngagementEvent) bool {
				return e.Location != nil && e.Location.City == "Pune"
			}), mock.Anything).
			Return(true, nil)
		fx.campaignRepo.EXPECT().IncrementCounter(ctx, campaign.ID, entity.CounterImpressions, int64(1)).Return(1, nil)

		result, err := fx.service.RecordImpression(ctx, campaign.ID, userID, entity.EventMeta{ClientIP: "203.0.113.7"})
		require.NoError(t, err)
		assert.True(t, result.Recorded)
	})
}

func TestEngagementService_RecordClick_DebitsAndKeepsRunning(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	campaign := runningCampaign(uuid.New())
	cost := testConfig().Campaign.CostPerClickAmount()

	fx.expectActiveUser(ctx, userID)
	fx.expectTx(t)
	fx.campaignRepo.EXPECT().FindByIDForUpdate(ctx, campaign.ID).Return(campaign, nil)
	fx.engagementRepo.EXPECT().InsertEvent(ctx, mock.MatchedBy(func(e *entity.EngagementEvent) bool {
		return e.Kind == entity.EventClick
	})).Return(nil)
	fx.campaignRepo.EXPECT().IncrementCounter(ctx, campaign.ID, entity.CounterClicks, int64(1)).Return(41, nil)
	fx.campaignRepo.EXPECT().Debit(ctx, campaign.ID, cost).Return(&entity.BudgetSnapshot{
		CampaignID:        campaign.ID,
		Budget:            campaign.Budget,
		CurrentSpending:   decimal.RequireFromString("100.50"),
		RemainingSpending: decimal.RequireFromString("899.50"),
	}, nil)

	result, err := fx.service.RecordClick(ctx, campaign.ID, userID, entity.EventMeta{})
	require.NoError(t, err)
	assert.Equal(t, int64(41), result.ClickCount)
	assert.Equal(t, entity.CampaignStatusRunning, result.Status)
	assert.True(t, result.RemainingSpending.Equal(decimal.RequireFromString("899.50")))
	fx.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestEngagementService_RecordClick_ExhaustionCompletesCampaign(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()
	campaign := runningCampaign(vendorID)
	campaign.CurrentSpending = decimal.RequireFromString("999.50")
	campaign.RemainingSpending = decimal.RequireFromString("0.50")

	fx.expectActiveUser(ctx, userID)
	fx.expectTx(t)
	fx.campaignRepo.EXPECT().FindByIDForUpdate(ctx, campaign.ID).Return(campaign, nil)
	fx.engagementRepo.EXPECT().InsertEvent(ctx, mock.Anything).Return(nil)
	fx.campaignRepo.EXPECT().IncrementCounter(ctx, campaign.ID, entity.CounterClicks, int64(1)).Return(2000, nil)
	fx.campaignRepo.EXPECT().Debit(ctx, campaign.ID, mock.Anything).Return(&entity.BudgetSnapshot{
		CampaignID:        campaign.ID,
		Budget:            campaign.Budget,
		CurrentSpending:   campaign.Budget,
		RemainingSpending: decimal.Zero,
	}, nil)
	fx.campaignRepo.EXPECT().
		TransitionStatus(ctx, campaign.ID, entity.CampaignStatusRunning, entity.CampaignStatusCompleted).
		Return(true, nil)

	var sent entity.NotificationMessage
	fx.notifier.EXPECT().Notify(ctx, vendorID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, message entity.NotificationMessage) { sent = message })

	result, err := fx.service.RecordClick(ctx, campaign.ID, userID, entity.EventMeta{})
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusCompleted, result.Status)
	assert.Equal(t, entity.NotificationCampaignCompleted, sent.Type)
	assert.Contains(t, sent.Message, "has exhausted its budget")
}

func TestEngagementService_RecordClick_CampaignNotFound(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	campaignID := uuid.New()

	fx.expectActiveUser(ctx, userID)
	fx.expectTx(t)
	fx.campaignRepo.EXPECT().FindByIDForUpdate(ctx, campaignID).Return(nil, repository.ErrCampaignNotFound)

	_, err := fx.service.RecordClick(ctx, campaignID, userID, entity.EventMeta{})
	assert.ErrorIs(t, err, domainerrors.ErrCampaignNotFound)
	fx.metrics.AssertCalled(t, "ObserveEvent", entity.EventClick, service.OutcomeFailed)
}

func TestEngagementService_RecordConversion_DefaultsTypeAndNotifies(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()
	campaign := runningCampaign(vendorID)
	amount := decimal.RequireFromString("249.99")

	fx.expectActiveUser(ctx, userID)
	fx.expectTx(t)
	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.engagementRepo.EXPECT().InsertConversion(ctx, mock.MatchedBy(func(c *entity.Conversion) bool {
		return c.Type == entity.DefaultConversionType && c.Amount.Equal(amount)
	})).Return(nil)
	fx.campaignRepo.EXPECT().IncrementCounter(ctx, campaign.ID, entity.CounterConversions, int64(1)).Return(1, nil)
	fx.notifier.EXPECT().Notify(ctx, vendorID, mock.MatchedBy(func(m entity.NotificationMessage) bool {
		return m.Type == entity.NotificationNewConversion && m.Data["amount"] == "249.99"
	}))

	conversion, err := fx.service.RecordConversion(ctx, campaign.ID, userID, usecase.ConversionInput{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultConversionType, conversion.Type)
}

func TestEngagementService_GetEngagementStatus(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	campaign := runningCampaign(uuid.New())

	set := entity.ReactionSet{}
	set.Mark(campaign.ID, entity.ReactionLike)
	set.Mark(campaign.ID, entity.ReactionSave)

	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.engagementRepo.EXPECT().ReactionsFor(ctx, userID, []uuid.UUID{campaign.ID}).Return(set, nil)

	flags, err := fx.service.GetEngagementStatus(ctx, campaign.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionFlags{Liked: true, Saved: true}, *flags)
}
