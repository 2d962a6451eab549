package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The identity service owns registration; this
// service writes only the location and active status columns.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName     string     `gorm:"type:varchar(100);not null;default:''"`
	Role         string     `gorm:"type:varchar(20);not null;index"`
	Latitude     *float64   `gorm:"type:double precision"`
	Longitude    *float64   `gorm:"type:double precision"`
	DateOfBirth  *time.Time `gorm:"type:date"`
	ActiveStatus string     `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
