// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"scubakeep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDiveLogNotFound is a domain-specific error returned when a dive log is not found.
var ErrDiveLogNotFound = errors.New("dive log not found")

// DiveLogRepository defines the standard operations for dive log persistence.
type DiveLogRepository interface {
	// FindAll retrieves every dive log in the system.
	FindAll(ctx context.Context) ([]*entity.DiveLog, error)

	// FindByID retrieves a single dive log by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DiveLog, error)

	// CountByDiverID returns the number of dive logs referencing the diver.
	CountByDiverID(ctx context.Context, diverID uuid.UUID) (int64, error)

	// Create persists a new dive log entity to the storage.
	Create(ctx context.Context, log *entity.DiveLog) error

	// Update modifies an existing dive log entity in the storage.
	Update(ctx context.Context, log *entity.DiveLog) error

	// Delete removes a dive log by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByDiverID removes every dive log owned by the diver and returns
	// the number of rows removed.
	DeleteByDiverID(ctx context.Context, diverID uuid.UUID) (int64, error)
}
