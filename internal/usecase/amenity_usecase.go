// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"hbnb/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAmenityInput defines the data required to create an amenity.
type CreateAmenityInput struct {
	Name string `json:"name" validate:"required,max=50"`
}

// UpdateAmenityInput defines the data for an amenity update.
type UpdateAmenityInput struct {
	Name string `json:"name" validate:"required,max=50"`
}

// AmenityUsecase defines the interface for amenity-related business operations.
// All mutations are admin only; reads are public.
type AmenityUsecase interface {
	CreateAmenity(ctx context.Context, actor entity.Actor, input CreateAmenityInput) (*entity.Amenity, error)
	GetAmenity(ctx context.Context, amenityID uuid.UUID) (*entity.Amenity, error)
	ListAmenities(ctx context.Context) ([]*entity.Amenity, error)
	UpdateAmenity(ctx context.Context, actor entity.Actor, amenityID uuid.UUID, input UpdateAmenityInput) (*entity.Amenity, error)
	DeleteAmenity(ctx context.Context, actor entity.Actor, amenityID uuid.UUID) error
}
