package repository

import (
	"context"
	"time"

	"adreach/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentTransactionRepository persists immutable payment records.
type PaymentTransactionRepository interface {
	// Create inserts a transaction.
	Create(ctx context.Context, tx *entity.PaymentTransaction) error

	// ListByUser returns a page of the user's transactions, newest first, with the total count.
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.PaymentTransaction, int64, error)

	// ListAllByUser returns every transaction of the user.
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentTransaction, error)

	// SumUserSpending sums the user's successful campaign payments.
	SumUserSpending(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// SumRevenue sums successful campaign payments created in [from, to). Zero times leave the side open.
	SumRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// RevenueByMonth sums successful campaign payments in [from, to) per YYYY-MM month in tz.
	RevenueByMonth(ctx context.Context, from, to time.Time, tz string) (map[string]decimal.Decimal, error)
}
