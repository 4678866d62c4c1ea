package model

import (
	"time"

	"github.com/google/uuid"
)

// DiveLogModel mirrors the 'dive_logs' table. Every row references an
// existing diver; the foreign key is indexed for per-diver counting.
type DiveLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	DiverID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DiveDate  time.Time `gorm:"type:date;not null"`
	Location  string    `gorm:"type:varchar(120);not null"`
	DiveSite  string    `gorm:"type:varchar(120);not null"`
	MaxDepth  float64   `gorm:"not null"`
	Duration  int       `gorm:"not null"`
	DiveBuddy string    `gorm:"type:varchar(50)"`
	Notes     string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiveLogModel) TableName() string {
	return "dive_logs"
}
