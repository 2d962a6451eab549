package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"adreach/config"
	"adreach/internal/domain/entity"
	"adreach/internal/domain/repository"
	mockRepo "adreach/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, time.March, 12, 10, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig() *config.Config {
	return config.Defaults()
}

// txRepos is the set of repositories handed out by a mocked transaction.
type txRepos struct {
	factory    *mockRepo.MockRepositoryFactory
	campaign   *mockRepo.MockCampaignRepository
	engagement *mockRepo.MockEngagementRepository
	comment    *mockRepo.MockCommentRepository
	payment    *mockRepo.MockPaymentTransactionRepository
}

// expectTx makes txManager run the transaction body against mocked repositories.
func expectTx(txManager *mockRepo.MockTransactionManager, repos txRepos) {
	repos.factory.EXPECT().NewCampaignRepository().Return(repos.campaign).Maybe()
	repos.factory.EXPECT().NewEngagementRepository().Return(repos.engagement).Maybe()
	repos.factory.EXPECT().NewCommentRepository().Return(repos.comment).Maybe()
	repos.factory.EXPECT().NewPaymentTransactionRepository().Return(repos.payment).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func runningCampaign(vendorID uuid.UUID) *entity.Campaign {
	lat, lon := 19.076, 72.8777

	return &entity.Campaign{
		ID:                uuid.New(),
		VendorID:          vendorID,
		Title:             "Monsoon Sale",
		Description:       "Up to 50% off",
		TargetLatitude:    &lat,
		TargetLongitude:   &lon,
		TargetRadiusKm:    50,
		Budget:            decimal.NewFromInt(1000),
		CurrentSpending:   decimal.NewFromInt(100),
		RemainingSpending: decimal.NewFromInt(900),
		Status:            entity.CampaignStatusRunning,
		PaymentStatus:     entity.PaymentStatusSuccess,
		GatewayOrderID:    "order_abc",
		StartDate:         fixedNow.AddDate(0, 0, -5),
		EndDate:           fixedNow.AddDate(0, 0, 20),
	}
}
