package repository

import (
	"context"
	"errors"

	"hbnb/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindAll retrieves every review.
	FindAll(ctx context.Context) ([]*entity.Review, error)

	// FindByPlace retrieves every review written about the given place.
	FindByPlace(ctx context.Context, placeID uuid.UUID) ([]*entity.Review, error)

	// FindByUser retrieves every review authored by the given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)

	// FindByUserAndPlace retrieves the single review the given user left on
	// the given place, or ErrReviewNotFound if none exists.
	FindByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*entity.Review, error)

	// Create persists a new review entity to the storage.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review entity in the storage.
	// It returns ErrReviewNotFound when no review with that id exists.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by id. It reports whether a review was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
