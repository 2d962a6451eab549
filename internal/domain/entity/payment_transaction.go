package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a payment record.
type TransactionType string

const (
	TransactionCampaignPayment TransactionType = "CAMPAIGN_PAYMENT"
	TransactionRefund          TransactionType = "REFUND"
)

// TransactionStatus is the gateway outcome of a payment record.
type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "SUCCESS"
	TransactionFailed  TransactionStatus = "FAILED"
	TransactionPending TransactionStatus = "PENDING"
)

// PaymentTransaction is an immutable financial record. Rows are only ever inserted.
type PaymentTransaction struct {
	ID               uuid.UUID         `json:"id"`
	UserID           uuid.UUID         `json:"user_id"`
	CampaignID       uuid.UUID         `json:"campaign_id"`
	CampaignTitle    string            `json:"campaign_title,omitempty"`
	Amount           decimal.Decimal   `json:"amount"`
	Type             TransactionType   `json:"type"`
	Status           TransactionStatus `json:"status"`
	GatewayOrderID   string            `json:"gateway_order_id"`
	GatewayPaymentID string            `json:"gateway_payment_id"`
	GatewaySignature string            `json:"-"`
	Description      string            `json:"description"`
	CreatedAt        time.Time         `json:"created_at"`
}

// TransactionStats summarizes a vendor's payment history.
type TransactionStats struct {
	TotalTransactions      int64                      `json:"total_transactions"`
	TotalSpending          decimal.Decimal            `json:"total_spending"`
	TotalRefunds           decimal.Decimal            `json:"total_refunds"`
	SuccessfulTransactions int64                      `json:"successful_transactions"`
	FailedTransactions     int64                      `json:"failed_transactions"`
	PendingTransactions    int64                      `json:"pending_transactions"`
	MonthlySpending        map[string]decimal.Decimal `json:"monthly_spending"`
}

// SummarizeTransactions folds a vendor's transactions into TransactionStats.
// Monthly spending is keyed by YYYY-MM in loc.
func SummarizeTransactions(txs []*PaymentTransaction, loc *time.Location) TransactionStats {
	stats := TransactionStats{
		TotalTransactions: int64(len(txs)),
		TotalSpending:     decimal.Zero,
		TotalRefunds:      decimal.Zero,
		MonthlySpending:   make(map[string]decimal.Decimal),
	}
	for _, tx := range txs {
		switch tx.Status {
		case TransactionSuccess:
			stats.SuccessfulTransactions++
		case TransactionFailed:
			stats.FailedTransactions++
		case TransactionPending:
			stats.PendingTransactions++
		}
		if tx.Status != TransactionSuccess {
			continue
		}

		switch tx.Type {
		case TransactionCampaignPayment:
			stats.TotalSpending = stats.TotalSpending.Add(tx.Amount)
			month := tx.CreatedAt.In(loc).Format("2006-01")
			stats.MonthlySpending[month] = stats.MonthlySpending[month].Add(tx.Amount)
		case TransactionRefund:
			stats.TotalRefunds = stats.TotalRefunds.Add(tx.Amount)
		}
	}

	return stats
}
