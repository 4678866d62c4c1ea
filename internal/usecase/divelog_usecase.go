package usecase

import (
	"context"
	"time"

	"scubakeep/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateDiveLogInput defines the data required to record a dive.
type CreateDiveLogInput struct {
	DiverID   uuid.UUID `json:"diverId" validate:"required"`
	DiveDate  time.Time `json:"diveDate" validate:"required"`
	Location  string    `json:"location" validate:"required,max=120"`
	DiveSite  string    `json:"diveSite" validate:"required,max=120"`
	MaxDepth  float64   `json:"maxDepth" validate:"required,gte=1"`
	Duration  int       `json:"duration" validate:"required,gte=1"`
	DiveBuddy string    `json:"diveBuddy" validate:"omitempty,max=50"`
	Notes     string    `json:"notes" validate:"omitempty,max=500"`
}

// UpdateDiveLogInput defines the data for a full dive log update. Supplying a
// different diver ID reassigns the log to that diver.
type UpdateDiveLogInput = CreateDiveLogInput

// --- Output DTOs ---

// DiveLogOutput returns a single dive log.
type DiveLogOutput struct {
	DiveLog *entity.DiveLog
}

// DiveLogListOutput returns every dive log.
type DiveLogListOutput struct {
	DiveLogs []*entity.DiveLog
}

// DiveLogUsecase defines the interface for dive-log business operations.
// Every mutation keeps the owning diver's dive count in step with the logs.
type DiveLogUsecase interface {
	ListDiveLogs(ctx context.Context) (*DiveLogListOutput, error)
	GetDiveLog(ctx context.Context, id uuid.UUID) (*DiveLogOutput, error)
	CreateDiveLog(ctx context.Context, input *CreateDiveLogInput) (*DiveLogOutput, error)
	UpdateDiveLog(ctx context.Context, id uuid.UUID, input *UpdateDiveLogInput) (*DiveLogOutput, error)
	DeleteDiveLog(ctx context.Context, id uuid.UUID) error
}
