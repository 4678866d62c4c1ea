package model

import (
	"time"

	"github.com/google/uuid"
)

// DiverModel mirrors the 'divers' table. PostgreSQL generates UUIDs via uuid_generate_v4().
// Uniqueness of username and email is checked at the application level first;
// the database constraints remain as a secondary guard.
type DiverModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username             string    `gorm:"type:varchar(40);unique;not null"`
	Email                string    `gorm:"type:varchar(120);unique;not null"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	FirstName            string    `gorm:"type:varchar(50);not null"`
	LastName             string    `gorm:"type:varchar(50);not null"`
	CountryCode          string    `gorm:"type:char(2);not null"`
	ProfilePicturePath   string    `gorm:"type:varchar(255)"`
	Role                 string    `gorm:"type:varchar(16);not null"`
	HighestCertification string    `gorm:"type:varchar(50);not null"`
	TotalDives           int       `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Specialties []DiverSpecialtyModel `gorm:"foreignKey:DiverID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DiverModel) TableName() string {
	return "divers"
}

// DiverSpecialtyModel mirrors the 'diver_specialties' table: one row per
// specialty tag, unique per diver.
type DiverSpecialtyModel struct {
	DiverID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Specialty string    `gorm:"type:varchar(50);primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (DiverSpecialtyModel) TableName() string {
	return "diver_specialties"
}
