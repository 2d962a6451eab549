package postgres

import (
	"context"
	"time"

	"adreach/internal/domain/entity"
	"adreach/internal/domain/repository"
	"adreach/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// paymentTransactionRepository implements the repository.PaymentTransactionRepository interface.
type paymentTransactionRepository struct {
	db *gorm.DB
}

// NewPaymentTransactionRepository is the constructor for paymentTransactionRepository.
func NewPaymentTransactionRepository(db *gorm.DB) repository.PaymentTransactionRepository {
	return &paymentTransactionRepository{
		db: db,
	}
}

// Create inserts a transaction.
func (repo *paymentTransactionRepository) Create(ctx context.Context, tx *entity.PaymentTransaction) error {
	row := fromPaymentTransactionDomain(tx)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCampaignNotFound
		}

		return wrapWriteError(err, "failed to create transaction")
	}
	tx.ID = row.ID
	tx.CreatedAt = row.CreatedAt

	return nil
}

// withCampaignTitle selects transactions joined with the title of their campaign.
func (repo *paymentTransactionRepository) withCampaignTitle(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.PaymentTransactionModel{}).
		Select("transactions.*, COALESCE(campaigns.title, '') AS campaign_title").
		Joins("LEFT JOIN campaigns ON campaigns.id = transactions.campaign_id")
}

// ListByUser returns a page of the user's transactions, newest first.
func (repo *paymentTransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.PaymentTransaction, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentTransactionModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count transactions")
	}
	if total == 0 {
		return []*entity.PaymentTransaction{}, 0, nil
	}

	var rows []*model.PaymentTransactionModel
	if err := repo.withCampaignTitle(ctx).
		Where("transactions.user_id = ?", userID).
		Order("transactions.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list transactions")
	}

	return toPaymentTransactionsDomain(rows), total, nil
}

// ListAllByUser returns every transaction of the user, newest first.
func (repo *paymentTransactionRepository) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentTransaction, error) {
	var rows []*model.PaymentTransactionModel
	if err := repo.withCampaignTitle(ctx).
		Where("transactions.user_id = ?", userID).
		Order("transactions.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return toPaymentTransactionsDomain(rows), nil
}

// successfulPayments scopes to settled campaign payments.
func (repo *paymentTransactionRepository) successfulPayments(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.PaymentTransactionModel{}).
		Where("type = ? AND status = ?", entity.TransactionCampaignPayment, entity.TransactionSuccess)
}

// SumUserSpending sums the user's successful campaign payments.
func (repo *paymentTransactionRepository) SumUserSpending(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := repo.successfulPayments(ctx).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum user spending")
	}

	return sum, nil
}

// SumRevenue sums successful campaign payments in [from, to).
func (repo *paymentTransactionRepository) SumRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := inRange(repo.successfulPayments(ctx), "created_at", from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum revenue")
	}

	return sum, nil
}

// RevenueByMonth sums successful campaign payments in [from, to) per YYYY-MM month in tz.
func (repo *paymentTransactionRepository) RevenueByMonth(ctx context.Context, from, to time.Time, tz string) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Month string
		Total decimal.Decimal
	}
	err := inRange(repo.successfulPayments(ctx), "created_at", from, to).
		Select("to_char(created_at AT TIME ZONE ?, 'YYYY-MM') AS month, SUM(amount) AS total", timezoneOrUTC(tz)).
		Group("month").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to group revenue by month")
	}

	revenue := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		revenue[row.Month] = row.Total
	}

	return revenue, nil
}

// inRange restricts column to [from, to); a zero bound leaves that side open.
func inRange(db *gorm.DB, column string, from, to time.Time) *gorm.DB {
	if !from.IsZero() {
		db = db.Where(column+" >= ?", from)
	}
	if !to.IsZero() {
		db = db.Where(column+" < ?", to)
	}

	return db
}

func timezoneOrUTC(tz string) string {
	if tz == "" {
		return "UTC"
	}

	return tz
}

// --- Mapper Functions ---

func toPaymentTransactionDomain(data *model.PaymentTransactionModel) *entity.PaymentTransaction {
	if data == nil {
		return nil
	}

	return &entity.PaymentTransaction{
		ID:               data.ID,
		UserID:           data.UserID,
		CampaignID:       data.CampaignID,
		CampaignTitle:    data.CampaignTitle,
		Amount:           data.Amount,
		Type:             entity.TransactionType(data.Type),
		Status:           entity.TransactionStatus(data.Status),
		GatewayOrderID:   data.GatewayOrderID,
		GatewayPaymentID: data.GatewayPaymentID,
		GatewaySignature: data.GatewaySignature,
		Description:      data.Description,
		CreatedAt:        data.CreatedAt,
	}
}

func toPaymentTransactionsDomain(rows []*model.PaymentTransactionModel) []*entity.PaymentTransaction {
	txs := make([]*entity.PaymentTransaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, toPaymentTransactionDomain(row))
	}

	return txs
}

func fromPaymentTransactionDomain(data *entity.PaymentTransaction) *model.PaymentTransactionModel {
	if data == nil {
		return nil
	}

	return &model.PaymentTransactionModel{
		ID:               data.ID,
		UserID:           data.UserID,
		CampaignID:       data.CampaignID,
		Amount:           data.Amount,
		Type:             string(data.Type),
		Status:           string(data.Status),
		GatewayOrderID:   data.GatewayOrderID,
		GatewayPaymentID: data.GatewayPaymentID,
		GatewaySignature: data.GatewaySignature,
		Description:      data.Description,
		CreatedAt:        data.CreatedAt,
	}
}
