package repository

import (
	"context"
	"errors"

	"hbnb/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlaceNotFound is a domain-specific error returned when a place is not found.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository defines the standard operations for place persistence.
type PlaceRepository interface {
	// FindByID retrieves a single place by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)

	// FindAll retrieves every place.
	FindAll(ctx context.Context) ([]*entity.Place, error)

	// FindByOwner retrieves every place owned by the given user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Place, error)

	// Create persists a new place entity to the storage.
	Create(ctx context.Context, place *entity.Place) error

	// Update modifies an existing place entity in the storage.
	// It returns ErrPlaceNotFound when no place with that id exists.
	Update(ctx context.Context, place *entity.Place) error

	// Delete removes a place by id. It reports whether a place was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
