package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"adreach/internal/domain/entity"
	domainerrors "adreach/internal/domain/errors"
	"adreach/internal/domain/repository"
	mockRepo "adreach/internal/mocks/repository"
	mockSvc "adreach/internal/mocks/service"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentFixtures struct {
	service      *commentService
	txManager    *mockRepo.MockTransactionManager
	campaignRepo *mockRepo.MockCampaignRepository
	commentRepo  *mockRepo.MockCommentRepository
	userRepo     *mockRepo.MockUserRepository
	notifier     *mockSvc.MockNotifier
}

func createTestCommentService(t *testing.T) commentFixtures {
	fx := commentFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		campaignRepo: mockRepo.NewMockCampaignRepository(t),
		commentRepo:  mockRepo.NewMockCommentRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		notifier:     mockSvc.NewMockNotifier(t),
	}

	svc := NewCommentService(CommentServiceParams{
		TxManager:    fx.txManager,
		CampaignRepo: fx.campaignRepo,
		CommentRepo:  fx.commentRepo,
		UserRepo:     fx.userRepo,
		Notifier:     fx.notifier,
		Logger:       discardLogger(),
	}).(*commentService)
	svc.now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

func (fx commentFixtures) expectTx(t *testing.T) {
	expectTx(fx.txManager, txRepos{
		factory:  mockRepo.NewMockRepositoryFactory(t),
		campaign: fx.campaignRepo,
		comment:  fx.commentRepo,
	})
}

func TestCommentService_Create_NotifiesVendor(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()
	campaign := runningCampaign(vendorID)

	fx.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, FullName: "Asha", ActiveStatus: entity.ActiveStatusActive}, nil)
	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.expectTx(t)
	fx.commentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Comment")).Return(nil)
	fx.campaignRepo.EXPECT().IncrementCounter(ctx, campaign.ID, entity.CounterComments, int64(1)).Return(1, nil)
	fx.notifier.EXPECT().Notify(ctx, vendorID, mock.MatchedBy(func(m entity.NotificationMessage) bool {
		return m.Type == entity.NotificationNewComment && m.Data["campaign_id"] == campaign.ID.String()
	}))

	comment, err := fx.service.Create(ctx, campaign.ID, userID, usecase.CreateCommentInput{Content: "  Love it!  "})
	require.NoError(t, err)
	assert.Equal(t, "Love it!", comment.Content)
	assert.Equal(t, "Asha", comment.AuthorName)
	assert.Nil(t, comment.ParentID)
}

func TestCommentService_Create_OwnerCommentIsQuiet(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	vendorID := uuid.New()
	campaign := runningCampaign(vendorID)

	fx.userRepo.EXPECT().FindByID(ctx, vendorID).
		Return(&entity.User{ID: vendorID, Role: entity.RoleVendor, ActiveStatus: entity.ActiveStatusActive}, nil)
	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.expectTx(t)
	fx.commentRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.campaignRepo.EXPECT().IncrementCounter(ctx, campaign.ID, entity.CounterComments, int64(1)).Return(1, nil)

	_, err := fx.service.Create(ctx, campaign.ID, vendorID, usecase.CreateCommentInput{Content: "Thanks all"})
	require.NoError(t, err)
	fx.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "blank", content: " \n\t "},
		{name: "too long", content: strings.Repeat("é", maxCommentLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommentService(t)

			_, err := fx.service.Create(context.Background(), uuid.New(), uuid.New(), usecase.CreateCommentInput{Content: tt.content})
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCommentService_Create_ParentRules(t *testing.T) {
	campaignID := uuid.New()
	otherCampaign := uuid.New()
	grandparent := uuid.New()

	tests := []struct {
		name      string
		parent    *entity.Comment
		parentErr error
		wantErr   error
	}{
		{
			name:      "missing parent",
			parentErr: repository.ErrCommentNotFound,
			wantErr:   domainerrors.ErrCommentNotFound,
		},
		{
			name:    "parent on another campaign",
			parent:  &entity.Comment{ID: uuid.New(), CampaignID: otherCampaign},
			wantErr: domainerrors.ErrCommentCampaignMismatch,
		},
		{
			name:    "reply to a reply",
			parent:  &entity.Comment{ID: uuid.New(), CampaignID: campaignID, ParentID: &grandparent},
			wantErr: domainerrors.ErrReplyDepthExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommentService(t)
			ctx := context.Background()
			userID := uuid.New()
			parentID := uuid.New()
			campaign := runningCampaign(uuid.New())
			campaign.ID = campaignID

			fx.userRepo.EXPECT().FindByID(ctx, userID).
				Return(&entity.User{ID: userID, ActiveStatus: entity.ActiveStatusActive}, nil)
			fx.campaignRepo.EXPECT().FindByID(ctx, campaignID).Return(campaign, nil)
			fx.commentRepo.EXPECT().FindByID(ctx, parentID).Return(tt.parent, tt.parentErr)

			_, err := fx.service.Create(ctx, campaignID, userID, usecase.CreateCommentInput{
				Content:  "reply",
				ParentID: &parentID,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCommentService_Create_BannedAuthor(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, ActiveStatus: entity.ActiveStatusBanned}, nil)

	_, err := fx.service.Create(ctx, uuid.New(), userID, usecase.CreateCommentInput{Content: "hi"})
	assert.ErrorIs(t, err, domainerrors.ErrUserBanned)
}

func TestCommentService_List(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	campaign := runningCampaign(uuid.New())
	root := &entity.Comment{ID: uuid.New(), CampaignID: campaign.ID, CreatedAt: fixedNow}
	reply := &entity.Comment{ID: uuid.New(), CampaignID: campaign.ID, ParentID: &root.ID, CreatedAt: fixedNow.Add(time.Minute)}

	fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	fx.commentRepo.EXPECT().ListByCampaign(ctx, campaign.ID).Return([]*entity.Comment{root, reply}, nil)

	tree, err := fx.service.List(ctx, campaign.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, []*entity.Comment{reply}, tree[0].Replies)
}

func TestCommentService_Delete(t *testing.T) {
	t.Run("author deletes with replies", func(t *testing.T) {
		fx := createTestCommentService(t)
		ctx := context.Background()
		userID := uuid.New()
		campaignID := uuid.New()
		comment := &entity.Comment{ID: uuid.New(), CampaignID: campaignID, UserID: userID}

		fx.commentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)
		fx.expectTx(t)
		fx.commentRepo.EXPECT().DeleteWithReplies(ctx, comment.ID).Return(3, nil)
		fx.campaignRepo.EXPECT().IncrementCounter(ctx, campaignID, entity.CounterComments, int64(-3)).Return(0, nil)

		require.NoError(t, fx.service.Delete(ctx, userID, comment.ID))
	})

	t.Run("campaign owner may delete", func(t *testing.T) {
		fx := createTestCommentService(t)
		ctx := context.Background()
		vendorID := uuid.New()
		campaign := runningCampaign(vendorID)
		comment := &entity.Comment{ID: uuid.New(), CampaignID: campaign.ID, UserID: uuid.New()}

		fx.commentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)
		fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
		fx.expectTx(t)
		fx.commentRepo.EXPECT().DeleteWithReplies(ctx, comment.ID).Return(1, nil)
		fx.campaignRepo.EXPECT().IncrementCounter(ctx, campaign.ID, entity.CounterComments, int64(-1)).Return(4, nil)

		require.NoError(t, fx.service.Delete(ctx, vendorID, comment.ID))
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		fx := createTestCommentService(t)
		ctx := context.Background()
		campaign := runningCampaign(uuid.New())
		comment := &entity.Comment{ID: uuid.New(), CampaignID: campaign.ID, UserID: uuid.New()}

		fx.commentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)
		fx.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)

		err := fx.service.Delete(ctx, uuid.New(), comment.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("already gone", func(t *testing.T) {
		fx := createTestCommentService(t)
		ctx := context.Background()
		commentID := uuid.New()

		fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(nil, repository.ErrCommentNotFound)

		err := fx.service.Delete(ctx, uuid.New(), commentID)
		assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
	})

	t.Run("removed concurrently by another request", func(t *testing.T) {
		fx := createTestCommentService(t)
		ctx := context.Background()
		userID := uuid.New()
		comment := &entity.Comment{ID: uuid.New(), CampaignID: uuid.New(), UserID: userID}

		fx.commentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)
		fx.expectTx(t)
		fx.commentRepo.EXPECT().DeleteWithReplies(ctx, comment.ID).Return(0, repository.ErrCommentNotFound)

		err := fx.service.Delete(ctx, userID, comment.ID)
		assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
	})
}
