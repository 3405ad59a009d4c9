package impl

import (
	"context"
	"testing"

	"hbnb/internal/domain/entity"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/domain/repository"
	"hbnb/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceService_CreatePlace_RequiresAuthentication(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.places.CreatePlace(ctx, entity.Anonymous(), usecase.CreatePlaceInput{
		Title: "Cabin",
		Price: 10,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestPlaceService_CreatePlace_OwnerIsActor(t *testing.T) {
	env := newTestEnv(t)

	owner, ownerActor := env.registerUser(t, "owner@example.com", false)
	place := env.createPlace(t, ownerActor, "Cabin")

	assert.Equal(t, owner.ID, place.OwnerID)
}

func TestPlaceService_CreatePlace_MissingAmenityPersistsNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, ownerActor := env.registerUser(t, "owner@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)
	wifi := env.createAmenity(t, adminActor, "Wi-Fi")

	_, err := env.places.CreatePlace(ctx, ownerActor, usecase.CreatePlaceInput{
		Title:      "Cabin",
		Price:      10,
		AmenityIDs: []uuid.UUID{wifi.ID, uuid.New()},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AMENITY_NOT_FOUND", appErr.ErrorCode())

	// All-or-nothing: the place must not exist.
	places, err := env.places.ListPlaces(ctx)
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestPlaceService_GetPlace_DetailView(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner, ownerActor := env.registerUser(t, "owner@example.com", false)
	_, guestActor := env.registerUser(t, "guest@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)

	wifi := env.createAmenity(t, adminActor, "Wi-Fi")
	parking := env.createAmenity(t, adminActor, "Parking")

	place, err := env.places.CreatePlace(ctx, ownerActor, usecase.CreatePlaceInput{
		Title:      "Cabin",
		Price:      10,
		AmenityIDs: []uuid.UUID{wifi.ID, parking.ID},
	})
	require.NoError(t, err)

	review, err := env.reviews.CreateReview(ctx, guestActor, usecase.CreateReviewInput{
		PlaceID: place.ID,
		Text:    "Great",
		Rating:  5,
	})
	require.NoError(t, err)

	detail, err := env.places.GetPlace(ctx, place.ID)
	require.NoError(t, err)

	assert.Equal(t, place.ID, detail.ID)
	assert.Equal(t, owner.ID, detail.Owner.ID)
	assert.Equal(t, owner.Email, detail.Owner.Email)
	assert.Len(t, detail.Amenities, 2)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, review.ID, detail.Reviews[0].ID)
}

func TestPlaceService_GetPlace_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.places.GetPlace(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
}

func TestPlaceService_UpdatePlace_OwnerOrAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, ownerActor := env.registerUser(t, "owner@example.com", false)
	_, strangerActor := env.registerUser(t, "stranger@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)

	place := env.createPlace(t, ownerActor, "Cabin")

	title := "Hacked"
	_, err := env.places.UpdatePlace(ctx, strangerActor, place.ID, usecase.UpdatePlaceInput{Title: &title})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	title = "Owner's Cabin"
	updated, err := env.places.UpdatePlace(ctx, ownerActor, place.ID, usecase.UpdatePlaceInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Owner's Cabin", updated.Title)

	price := 42.0
	updated, err = env.places.UpdatePlace(ctx, adminActor, place.ID, usecase.UpdatePlaceInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 42.0, updated.Price)
}

func TestPlaceService_UpdatePlace_OwnerReassignmentAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, ownerActor := env.registerUser(t, "owner@example.com", false)
	newOwner, _ := env.registerUser(t, "newowner@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)

	place := env.createPlace(t, ownerActor, "Cabin")

	_, err := env.places.UpdatePlace(ctx, ownerActor, place.ID, usecase.UpdatePlaceInput{OwnerID: &newOwner.ID})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := env.places.UpdatePlace(ctx, adminActor, place.ID, usecase.UpdatePlaceInput{OwnerID: &newOwner.ID})
	require.NoError(t, err)
	assert.Equal(t, newOwner.ID, updated.OwnerID)

	// Reassigning to a user that does not exist is rejected.
	missing := uuid.New()
	_, err = env.places.UpdatePlace(ctx, adminActor, place.ID, usecase.UpdatePlaceInput{OwnerID: &missing})
	assert.ErrorIs(t, err, domainerrors.ErrOwnerNotFound)
}

func TestPlaceService_DeletePlace_RemovesReviews(t *testing.T) {
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

	require.NoError(t, env.places.DeletePlace(ctx, ownerActor, place.ID))

	_, err = env.placeRepo.FindByID(ctx, place.ID)
	assert.ErrorIs(t, err, repository.ErrPlaceNotFound)

	_, err = env.reviewRepo.FindByID(ctx, review.ID)
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
}
