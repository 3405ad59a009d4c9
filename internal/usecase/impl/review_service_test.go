package impl

import (
	"context"
	"testing"

	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/domain/repository"
	"hbnb/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateReview_AttachesToPlace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, ownerActor := env.registerUser(t, "owner@example.com", false)
	guest, guestActor := env.registerUser(t, "guest@example.com", false)

	place := env.createPlace(t, ownerActor, "Cabin")

	review, err := env.reviews.CreateReview(ctx, guestActor, usecase.CreateReviewInput{
		PlaceID: place.ID,
		Text:    "Great stay",
		Rating:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, guest.ID, review.UserID)

	// The place's review list carries the back-reference.
	stored, err := env.placeRepo.FindByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{review.ID}, stored.ReviewIDs)
}

func TestReviewService_CreateReview_OwnPlaceRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, ownerActor := env.registerUser(t, "owner@example.com", false)
	place := env.createPlace(t, ownerActor, "Cabin")

	_, err := env.reviews.CreateReview(ctx, ownerActor, usecase.CreateReviewInput{
		PlaceID: place.ID,
		Text:    "I love my own place",
		Rating:  5,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_CreateReview_OnePerUserPerPlace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, ownerActor := env.registerUser(t, "owner@example.com", false)
	_, guestActor := env.registerUser(t, "guest@example.com", false)
	place := env.createPlace(t, ownerActor, "Cabin")

	_, err := env.reviews.CreateReview(ctx, guestActor, usecase.CreateReviewInput{
		PlaceID: place.ID,
		Text:    "First",
		Rating:  4,
	})
	require.NoError(t, err)

	_, err = env.reviews.CreateReview(ctx, guestActor, usecase.CreateReviewInput{
		PlaceID: place.ID,
		Text:    "Second",
		Rating:  1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)

	// Only the first review stuck, on the place too.
	stored, err := env.placeRepo.FindByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Len(t, stored.ReviewIDs, 1)
}

func TestReviewService_CreateReview_MissingPlace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, guestActor := env.registerUser(t, "guest@example.com", false)

	_, err := env.reviews.CreateReview(ctx, guestActor, usecase.CreateReviewInput{
		PlaceID: uuid.New(),
		Text:    "Ghost place",
		Rating:  3,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
}

func TestReviewService_UpdateReview_AuthorOrAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, ownerActor := env.registerUser(t, "owner@example.com", false)
	_, guestActor := env.registerUser(t, "guest@example.com", false)
	_, strangerActor := env.registerUser(t, "stranger@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)

	place := env.createPlace(t, ownerActor, "Cabin")
	review, err := env.reviews.CreateReview(ctx, guestActor, usecase.CreateReviewInput{
		PlaceID: place.ID,
		Text:    "Okay",
		Rating:  3,
	})
	require.NoError(t, err)

	text := "Hijacked"
	_, err = env.reviews.UpdateReview(ctx, strangerActor, review.ID, usecase.UpdateReviewInput{Text: &text})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	text = "Actually great"
	rating := 5
	updated, err := env.reviews.UpdateReview(ctx, guestActor, review.ID, usecase.UpdateReviewInput{Text: &text, Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, "Actually great", updated.Text)
	assert.Equal(t, 5, updated.Rating)

	rating = 4
	updated, err = env.reviews.UpdateReview(ctx, adminActor, review.ID, usecase.UpdateReviewInput{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
}

func TestReviewService_DeleteReview_DetachesFromPlace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, ownerActor := env.registerUser(t, "owner@example.com", false)
	_, guestActor := env.registerUser(t, "guest@example.com", false)

	place := env.createPlace(t, ownerActor, "Cabin")
	review, err := env.reviews.CreateReview(ctx, guestActor, usecase.CreateReviewInput{
		PlaceID: place.ID,
		Text:    "Fine",
		Rating:  3,
	})
	require.NoError(t, err)

	require.NoError(t, env.reviews.DeleteReview(ctx, guestActor, review.ID))

	_, err = env.reviewRepo.FindByID(ctx, review.ID)
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)

	stored, err := env.placeRepo.FindByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ReviewIDs)
}

func TestReviewService_ListReviewsByPlace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, ownerActor := env.registerUser(t, "owner@example.com", false)
	_, guestActor := env.registerUser(t, "guest@example.com", false)
	_, otherActor := env.registerUser(t, "other@example.com", false)

	place := env.createPlace(t, ownerActor, "Cabin")
	otherPlace := env.createPlace(t, ownerActor, "Loft")

	_, err := env.reviews.CreateReview(ctx, guestActor, usecase.CreateReviewInput{PlaceID: place.ID, Text: "A", Rating: 4})
	require.NoError(t, err)
	_, err = env.reviews.CreateReview(ctx, otherActor, usecase.CreateReviewInput{PlaceID: place.ID, Text: "B", Rating: 2})
	require.NoError(t, err)
	_, err = env.reviews.CreateReview(ctx, guestActor, usecase.CreateReviewInput{PlaceID: otherPlace.ID, Text: "C", Rating: 5})
	require.NoError(t, err)

	reviews, err := env.reviews.ListReviewsByPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	all, err := env.reviews.ListReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
