package repository

import (
	"context"
	"errors"

	"hbnb/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAmenityNotFound is a domain-specific error returned when an amenity is not found.
var ErrAmenityNotFound = errors.New("amenity not found")

// AmenityRepository defines the standard operations for amenity persistence.
type AmenityRepository interface {
	// FindByID retrieves a single amenity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Amenity, error)

	// FindByName retrieves a single amenity by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Amenity, error)

	// FindAll retrieves every amenity.
	FindAll(ctx context.Context) ([]*entity.Amenity, error)

	// Create persists a new amenity entity to the storage.
	Create(ctx context.Context, amenity *entity.Amenity) error

	// Update modifies an existing amenity entity in the storage.
	// It returns ErrAmenityNotFound when no amenity with that id exists.
	Update(ctx context.Context, amenity *entity.Amenity) error

	// Delete removes an amenity by id. It reports whether an amenity was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
