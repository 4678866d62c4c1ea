package usecase

import (
	"context"

	"scubakeep/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateDiverInput defines the data for the authenticated diver-create
// operation. The shape matches RegisterInput; the operation differs only in
// its authorization requirements.
type CreateDiverInput = RegisterInput

// UpdateDiverInput defines the mutable profile fields of a diver. Credentials,
// role and the dive count are never updatable through this path.
type UpdateDiverInput struct {
	FirstName            string   `json:"firstName" validate:"required,max=50"`
	LastName             string   `json:"lastName" validate:"required,max=50"`
	CountryCode          string   `json:"countryCode" validate:"required,iso3166_1_alpha2"`
	ProfilePicturePath   string   `json:"profilePicturePath" validate:"omitempty,max=255"`
	HighestCertification string   `json:"highestCertification" validate:"required"`
	Specialties          []string `json:"specialties" validate:"omitempty,max=30,unique,dive,max=50"`
}

// --- Output DTOs ---

// DiverOutput returns a single diver.
type DiverOutput struct {
	Diver *entity.Diver
}

// DiverListOutput returns every diver.
type DiverListOutput struct {
	Divers []*entity.Diver
}

// DiverQRCodeOutput returns the PNG bytes of a profile share code.
type DiverQRCodeOutput struct {
	PNG []byte
}

// DiverUsecase defines the interface for diver-related business operations.
type DiverUsecase interface {
	ListDivers(ctx context.Context) (*DiverListOutput, error)
	GetDiver(ctx context.Context, id uuid.UUID) (*DiverOutput, error)
	GetDiverQRCode(ctx context.Context, id uuid.UUID) (*DiverQRCodeOutput, error)
	CreateDiver(ctx context.Context, input *CreateDiverInput) (*DiverOutput, error)
	UpdateDiver(ctx context.Context, id uuid.UUID, input *UpdateDiverInput) (*DiverOutput, error)
	DeleteDiver(ctx context.Context, id uuid.UUID) error
}
