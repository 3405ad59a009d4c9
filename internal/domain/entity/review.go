package entity

import (
	"strings"
	"time"

	"hbnb/internal/errors"

	"github.com/google/uuid"
)

// Review is an opinion one user left on one place. A user may hold at most
// one review per place; that uniqueness is enforced by the review service.
type Review struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the review.
	Text      string    // Review body, required.
	Rating    int       // Star rating, integer in [1, 5].
	UserID    uuid.UUID // Author of the review.
	PlaceID   uuid.UUID // Place being reviewed.
	CreatedAt time.Time // Timestamp of when this review was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// NewReview validates and constructs a Review. Referential existence of
// user and place is checked by the service layer.
func NewReview(text string, rating int, userID, placeID uuid.UUID) (*Review, error) {
	clean, err := validateReviewText(text)
	if err != nil {
		return nil, err
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	if userID == uuid.Nil {
		return nil, errors.New("user id is required")
	}
	if placeID == uuid.Nil {
		return nil, errors.New("place id is required")
	}

	now := time.Now().UTC()

	return &Review{
		ID:        uuid.New(),
		Text:      clean,
		Rating:    rating,
		UserID:    userID,
		PlaceID:   placeID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetText validates and applies a new review body.
func (r *Review) SetText(text string) error {
	clean, err := validateReviewText(text)
	if err != nil {
		return err
	}
	r.Text = clean
	r.Touch()

	return nil
}

// SetRating validates and applies a new rating.
func (r *Review) SetRating(rating int) error {
	if err := validateRating(rating); err != nil {
		return err
	}
	r.Rating = rating
	r.Touch()

	return nil
}

// Touch refreshes the UpdatedAt timestamp.
func (r *Review) Touch() {
	r.UpdatedAt = time.Now().UTC()
}

// PublicReview is the canonical external representation of a Review.
type PublicReview struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    uuid.UUID `json:"user_id"`
	PlaceID   uuid.UUID `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public returns the external representation of the review.
func (r *Review) Public() PublicReview {
	return PublicReview{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		UserID:    r.UserID,
		PlaceID:   r.PlaceID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func validateReviewText(text string) (string, error) {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return "", errors.New("review text is required")
	}

	return clean, nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}

	return nil
}
