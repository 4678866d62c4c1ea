// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"scubakeep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDiverNotFound is a domain-specific error returned when a diver is not found.
var ErrDiverNotFound = errors.New("diver not found")

// DiverRepository defines the standard operations for diver persistence.
// The application layer depends on this interface, not the concrete implementation.
type DiverRepository interface {
	// FindAll retrieves every diver in the system.
	FindAll(ctx context.Context) ([]*entity.Diver, error)

	// FindByID retrieves a single diver by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Diver, error)

	// FindByUsername retrieves a single diver by their username.
	FindByUsername(ctx context.Context, username string) (*entity.Diver, error)

	// FindByEmail retrieves a single diver by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Diver, error)

	// ExistsByUsername reports whether a diver with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether a diver with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new diver entity to the storage.
	Create(ctx context.Context, diver *entity.Diver) error

	// Update modifies an existing diver entity in the storage.
	Update(ctx context.Context, diver *entity.Diver) error

	// Delete removes a diver by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustTotalDives atomically adds delta to the diver's total dive count,
	// clamped at zero. The adjustment must serialize with concurrent writers
	// at the storage layer so no update is lost.
	AdjustTotalDives(ctx context.Context, id uuid.UUID, delta int) error
}
