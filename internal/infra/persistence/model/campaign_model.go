package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CampaignMediaModel is one element of the campaigns.media jsonb array.
type CampaignMediaModel struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	StorageID string `json:"storage_id"`
}

// TargetedLocationModel is the campaigns.targeted_location jsonb document.
type TargetedLocationModel struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

// CampaignModel is the GORM-specific struct for the 'campaigns' table.
// Money columns are numeric(14,2); the counters are a projection of the event tables.
type CampaignModel struct {
	ID          uuid.UUID                               `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID    uuid.UUID                               `gorm:"type:uuid;not null;index"`
	Title       string                                  `gorm:"type:varchar(200);not null"`
	Description string                                  `gorm:"type:text;not null;default:''"`
	Media       datatypes.JSONSlice[CampaignMediaModel] `gorm:"type:jsonb;not null;default:'[]'"`

	TargetedLocation datatypes.JSONType[TargetedLocationModel] `gorm:"type:jsonb;not null;default:'{}'"`
	TargetLatitude   *float64                                  `gorm:"type:double precision"`
	TargetLongitude  *float64                                  `gorm:"type:double precision"`
	TargetRadiusKm   float64                                   `gorm:"type:double precision;not null;default:50"`
	TargetedAgeMin   *int                                      `gorm:"type:smallint"`
	TargetedAgeMax   *int                                      `gorm:"type:smallint"`

	Budget            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CurrentSpending   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	RemainingSpending decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	Status           string    `gorm:"type:varchar(20);not null;index"`
	PaymentStatus    string    `gorm:"type:varchar(20);not null"`
	GatewayOrderID   string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	GatewayPaymentID string    `gorm:"type:varchar(100);not null;default:''"`
	StartDate        time.Time `gorm:"not null"`
	EndDate          time.Time `gorm:"not null;index"`

	LikeCount       int64           `gorm:"not null;default:0"`
	DislikeCount    int64           `gorm:"not null;default:0"`
	LoveCount       int64           `gorm:"not null;default:0"`
	CommentCount    int64           `gorm:"not null;default:0"`
	ShareCount      int64           `gorm:"not null;default:0"`
	SaveCount       int64           `gorm:"not null;default:0"`
	ImpressionCount int64           `gorm:"not null;default:0"`
	ClickCount      int64           `gorm:"not null;default:0"`
	ConversionCount int64           `gorm:"not null;default:0"`
	CTR             decimal.Decimal `gorm:"column:ctr;type:numeric(7,2);not null;default:0"`

	IsFlagged          bool `gorm:"not null;default:false"`
	LowBudgetAlertedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}
