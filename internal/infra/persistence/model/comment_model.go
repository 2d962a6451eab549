package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel is the GORM-specific struct for the 'campaign_comments' table.
// AuthorName is read from users on list queries and never written.
type CommentModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null"`
	Content    string     `gorm:"type:text;not null"`
	ParentID   *uuid.UUID `gorm:"type:uuid;index"`
	AuthorName string     `gorm:"->;-:migration"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return TableComments
}
