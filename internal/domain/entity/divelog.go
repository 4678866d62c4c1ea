package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiveLog represents a single recorded dive. Every log belongs to exactly
// one diver; ownership may be reassigned by updating DiverID.
type DiveLog struct {
	ID        uuid.UUID
	DiverID   uuid.UUID
	DiveDate  time.Time
	Location  string
	DiveSite  string
	MaxDepth  float64
	Duration  int
	DiveBuddy string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
