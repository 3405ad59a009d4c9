// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"hbnb/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreatePlaceInput defines the data required to create a place.
// The owner is always the acting user; there is no owner field here.
type CreatePlaceInput struct {
	Title       string      `json:"title" validate:"required,max=100"`
	Description string      `json:"description"`
	Price       float64     `json:"price" validate:"gte=0"`
	Latitude    float64     `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64     `json:"longitude" validate:"gte=-180,lte=180"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids"`
}

// UpdatePlaceInput defines the data for a partial place update.
// Nil fields are left untouched. OwnerID reassignment is admin only.
type UpdatePlaceInput struct {
	Title       *string      `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string      `json:"description,omitempty"`
	Price       *float64     `json:"price,omitempty" validate:"omitempty,gte=0"`
	Latitude    *float64     `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64     `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	OwnerID     *uuid.UUID   `json:"owner_id,omitempty"`
	AmenityIDs  *[]uuid.UUID `json:"amenity_ids,omitempty"`
}

// --- Output DTOs ---

// PlaceOwnerOutput is the embedded owner summary in a place detail view.
type PlaceOwnerOutput struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// PlaceDetailOutput is the extended place view with the owner summary and
// the amenity associations resolved to full representations.
type PlaceDetailOutput struct {
	entity.PublicPlace

	Owner     PlaceOwnerOutput       `json:"owner"`
	Amenities []entity.PublicAmenity `json:"amenities"`
	Reviews   []entity.PublicReview  `json:"reviews"`
}

// PlaceUsecase defines the interface for place-related business operations.
type PlaceUsecase interface {
	// CreatePlace creates a listing owned by the actor. All referenced
	// amenities must exist or nothing is created.
	CreatePlace(ctx context.Context, actor entity.Actor, input CreatePlaceInput) (*entity.Place, error)

	// GetPlace retrieves the extended detail view of a place. Public.
	GetPlace(ctx context.Context, placeID uuid.UUID) (*PlaceDetailOutput, error)

	// ListPlaces retrieves every place. Public.
	ListPlaces(ctx context.Context) ([]*entity.Place, error)

	// UpdatePlace applies a partial update. Owner or admin; owner
	// reassignment is admin only.
	UpdatePlace(ctx context.Context, actor entity.Actor, placeID uuid.UUID, input UpdatePlaceInput) (*entity.Place, error)

	// DeletePlace removes a place and every review written about it.
	DeletePlace(ctx context.Context, actor entity.Actor, placeID uuid.UUID) error
}
