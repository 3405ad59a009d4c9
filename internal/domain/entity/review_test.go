package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview_Success(t *testing.T) {
	userID := uuid.New()
	placeID := uuid.New()

	review, err := NewReview("  Great stay!  ", 5, userID, placeID)

	require.NoError(t, err)
	assert.Equal(t, "Great stay!", review.Text)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, userID, review.UserID)
	assert.Equal(t, placeID, review.PlaceID)
}

func TestNewReview_RatingBounds(t *testing.T) {
	userID := uuid.New()
	placeID := uuid.New()

	for rating := 1; rating <= 5; rating++ {
		_, err := NewReview("text", rating, userID, placeID)
		assert.NoError(t, err)
	}

	_, err := NewReview("text", 0, userID, placeID)
	assert.Error(t, err)

	_, err = NewReview("text", 6, userID, placeID)
	assert.Error(t, err)
}

func TestNewReview_Validation(t *testing.T) {
	_, err := NewReview("   ", 3, uuid.New(), uuid.New())
	assert.Error(t, err)

	_, err = NewReview("text", 3, uuid.Nil, uuid.New())
	assert.Error(t, err)

	_, err = NewReview("text", 3, uuid.New(), uuid.Nil)
	assert.Error(t, err)
}

func TestNewAmenity_Validation(t *testing.T) {
	amenity, err := NewAmenity("  Wi-Fi  ")
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", amenity.Name)

	_, err = NewAmenity("")
	assert.Error(t, err)

	_, err = NewAmenity("                ")
	assert.Error(t, err)
}
