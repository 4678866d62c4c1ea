// Package entity contains the core business objects of the application.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Diver represents a registered diver profile. It is a pure domain object
// and carries no persistence or transport concerns.
type Diver struct {
	ID                   uuid.UUID
	Username             string
	Email                string
	PasswordHash         string
	FirstName            string
	LastName             string
	CountryCode          string
	ProfilePicturePath   string
	Role                 Role
	HighestCertification Certification
	Specialties          []string
	TotalDives           int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Rank derives the diver's rank from the stored dive count.
// It is never persisted; the dive count is the single source of truth.
func (d *Diver) Rank() Rank {
	return RankForDives(d.TotalDives)
}
