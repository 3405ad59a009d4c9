// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"hbnb/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateReviewInput defines the data required to create a review.
// The author is always the acting user.
type CreateReviewInput struct {
	PlaceID uuid.UUID `json:"place_id" validate:"required"`
	Text    string    `json:"text" validate:"required"`
	Rating  int       `json:"rating" validate:"required,gte=1,lte=5"`
}

// UpdateReviewInput defines the data for a partial review update.
// Nil fields are left untouched.
type UpdateReviewInput struct {
	Text   *string `json:"text,omitempty" validate:"omitempty,min=1"`
	Rating *int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
}

// ReviewUsecase defines the interface for review-related business operations.
type ReviewUsecase interface {
	// CreateReview creates a review authored by the actor. One review per
	// user per place; the place's review list is updated in the same
	// transaction.
	CreateReview(ctx context.Context, actor entity.Actor, input CreateReviewInput) (*entity.Review, error)

	// GetReview retrieves a single review. Public.
	GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)

	// ListReviews retrieves every review. Public.
	ListReviews(ctx context.Context) ([]*entity.Review, error)

	// ListReviewsByPlace retrieves every review of one place. Public.
	ListReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*entity.Review, error)

	// UpdateReview applies a partial update. Author or admin.
	UpdateReview(ctx context.Context, actor entity.Actor, reviewID uuid.UUID, input UpdateReviewInput) (*entity.Review, error)

	// DeleteReview removes a review and drops it from the place's review
	// list in the same transaction.
	DeleteReview(ctx context.Context, actor entity.Actor, reviewID uuid.UUID) error
}
