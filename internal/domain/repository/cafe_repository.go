// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cafemap/internal/domain/entity"
	"cafemap/internal/errors"

	"github.com/google/uuid"
)

// ErrCafeNotFound is returned when a café lookup misses.
var ErrCafeNotFound = errors.New("cafe not found")

// CafeRepository defines the café lookups the core needs.
type CafeRepository interface {
	// FindCafeByID retrieves a café by its id.
	// Returns ErrCafeNotFound if it does not exist.
	FindCafeByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error)

	// FindCafesInBounds returns every café whose latitude and longitude fall
	// within the closed viewport rectangle. Order is unspecified.
	FindCafesInBounds(ctx context.Context, bounds entity.Bounds) ([]*entity.Cafe, error)

	// UpsertCafe inserts a café, or updates name/address/coordinates of the
	// café sharing its place id.
	UpsertCafe(ctx context.Context, cafe *entity.Cafe) error
}
