package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentTransactionModel is the GORM-specific struct for the 'transactions' table.
// Rows are inserted once and never updated.
type PaymentTransactionModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	CampaignID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Type             string          `gorm:"type:varchar(30);not null"`
	Status           string          `gorm:"type:varchar(20);not null"`
	GatewayOrderID   string          `gorm:"type:varchar(100);not null;default:''"`
	GatewayPaymentID string          `gorm:"type:varchar(100);not null;default:''"`
	GatewaySignature string          `gorm:"type:varchar(255);not null;default:''"`
	Description      string          `gorm:"type:text;not null;default:''"`
	CampaignTitle    string          `gorm:"->;-:migration"`
	CreatedAt        time.Time       `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentTransactionModel) TableName() string {
	return "transactions"
}
