package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ReactionModel is the shared shape of campaign_likes, campaign_dislikes, campaign_loves
// and campaign_saves. Each table has its own unique (campaign_id, user_id) index,
// named after the table, so callers always pick the table explicitly.
type ReactionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID uuid.UUID `gorm:"type:uuid;not null;index:,unique,composite:campaign_user"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:,unique,composite:campaign_user;index"`
	CreatedAt  time.Time
}

// LocatedEventModel is the shared shape of campaign_impressions and campaign_clicks.
type LocatedEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID uuid.UUID `gorm:"type:uuid;not null;index:,composite:campaign_user_time"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:,composite:campaign_user_time"`
	City       *string   `gorm:"type:varchar(100)"`
	State      *string   `gorm:"type:varchar(100)"`
	Country    *string   `gorm:"type:varchar(100)"`
	Latitude   *float64  `gorm:"type:double precision"`
	Longitude  *float64  `gorm:"type:double precision"`
	DeviceType string    `gorm:"type:varchar(50);not null;default:''"`
	CreatedAt  time.Time `gorm:"index:,composite:campaign_user_time"`
}

// ShareModel is the GORM-specific struct for the 'campaign_shares' table.
type ShareModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShareModel) TableName() string {
	return "campaign_shares"
}

// ConversionModel is the GORM-specific struct for the 'campaign_conversions' table.
type ConversionModel struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID uuid.UUID         `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID         `gorm:"type:uuid;not null"`
	Amount     *decimal.Decimal  `gorm:"type:numeric(14,2)"`
	Type       string            `gorm:"type:varchar(50);not null;default:'general'"`
	Metadata   datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversionModel) TableName() string {
	return "campaign_conversions"
}

// Event table names.
const (
	TableImpressions = "campaign_impressions"
	TableClicks      = "campaign_clicks"
	TableShares      = "campaign_shares"
	TableConversions = "campaign_conversions"
	TableLikes       = "campaign_likes"
	TableDislikes    = "campaign_dislikes"
	TableLoves       = "campaign_loves"
	TableSaves       = "campaign_saves"
	TableComments    = "campaign_comments"
)
