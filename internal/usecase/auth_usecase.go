// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"scubakeep/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new diver.
// The role is always USER and the dive count always starts at zero;
// neither is accepted from the caller.
type RegisterInput struct {
	Username             string   `json:"username" validate:"required,min=5,max=40"`
	Email                string   `json:"email" validate:"required,email,max=120"`
	Password             string   `json:"password" validate:"required,min=8,max=72"`
	FirstName            string   `json:"firstName" validate:"required,max=50"`
	LastName             string   `json:"lastName" validate:"required,max=50"`
	CountryCode          string   `json:"countryCode" validate:"required,iso3166_1_alpha2"`
	ProfilePicturePath   string   `json:"profilePicturePath" validate:"omitempty,max=255"`
	HighestCertification string   `json:"highestCertification" validate:"required"`
	Specialties          []string `json:"specialties" validate:"omitempty,max=30,unique,dive,max=50"`
}

// TokenInput defines the data required to obtain an access token.
// The identifier may be either a username or an email address.
type TokenInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created diver.
type RegisterOutput struct {
	Diver *entity.Diver
}

// TokenOutput returns the issued access token.
type TokenOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	IssueToken(ctx context.Context, input *TokenInput) (*TokenOutput, error)
}
