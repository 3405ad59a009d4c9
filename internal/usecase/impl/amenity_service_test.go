package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/domain/repository"
	"hbnb/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmenityService_MutationsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, userActor := env.registerUser(t, "user@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)

	_, err := env.amenities.CreateAmenity(ctx, userActor, usecase.CreateAmenityInput{Name: "Wi-Fi"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	wifi := env.createAmenity(t, adminActor, "Wi-Fi")

	_, err = env.amenities.UpdateAmenity(ctx, userActor, wifi.ID, usecase.UpdateAmenityInput{Name: "Ethernet"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = env.amenities.DeleteAmenity(ctx, userActor, wifi.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAmenityService_UniqueNames(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, adminActor := env.registerUser(t, "admin@example.com", true)

	env.createAmenity(t, adminActor, "Wi-Fi")

	_, err := env.amenities.CreateAmenity(ctx, adminActor, usecase.CreateAmenityInput{Name: "Wi-Fi"})
	assert.ErrorIs(t, err, domainerrors.ErrAmenityAlreadyExists)

	// Renaming onto an existing name collides too.
	parking := env.createAmenity(t, adminActor, "Parking")
	_, err = env.amenities.UpdateAmenity(ctx, adminActor, parking.ID, usecase.UpdateAmenityInput{Name: "Wi-Fi"})
	assert.ErrorIs(t, err, domainerrors.ErrAmenityAlreadyExists)

	// Renaming to itself is a no-op, not a conflict.
	renamed, err := env.amenities.UpdateAmenity(ctx, adminActor, parking.ID, usecase.UpdateAmenityInput{Name: "Parking"})
	require.NoError(t, err)
	assert.Equal(t, "Parking", renamed.Name)
}

func TestAmenityService_UniqueNamesCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, adminActor := env.registerUser(t, "admin@example.com", true)
	wifi := env.createAmenity(t, adminActor, "Wi-Fi")

	_, err := env.amenities.CreateAmenity(ctx, adminActor, usecase.CreateAmenityInput{Name: "WI-FI"})
	assert.ErrorIs(t, err, domainerrors.ErrAmenityAlreadyExists)

	// Re-casing an amenity's own name is a rename, not a conflict.
	renamed, err := env.amenities.UpdateAmenity(ctx, adminActor, wifi.ID, usecase.UpdateAmenityInput{Name: "wi-fi"})
	require.NoError(t, err)
	assert.Equal(t, "wi-fi", renamed.Name)
}

func TestAmenityService_Rename(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, adminActor := env.registerUser(t, "admin@example.com", true)
	wifi := env.createAmenity(t, adminActor, "Wi-Fi")

	renamed, err := env.amenities.UpdateAmenity(ctx, adminActor, wifi.ID, usecase.UpdateAmenityInput{Name: "Wireless"})
	require.NoError(t, err)
	assert.Equal(t, "Wireless", renamed.Name)

	found, err := env.amenities.GetAmenity(ctx, wifi.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wireless", found.Name)
}

func TestAmenityService_DeleteDetachesFromPlaces(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, ownerActor := env.registerUser(t, "owner@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)

	wifi := env.createAmenity(t, adminActor, "Wi-Fi")
	parking := env.createAmenity(t, adminActor, "Parking")

	place, err := env.places.CreatePlace(ctx, ownerActor, usecase.CreatePlaceInput{
		Title:      "Cabin",
		Price:      10,
		AmenityIDs: []uuid.UUID{wifi.ID, parking.ID},
	})
	require.NoError(t, err)

	require.NoError(t, env.amenities.DeleteAmenity(ctx, adminActor, wifi.ID))

	// The place keeps only the surviving amenity, so the detail view
	// never hits a dangling reference.
	stored, err := env.placeRepo.FindByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{parking.ID}, stored.AmenityIDs)

	detail, err := env.places.GetPlace(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, detail.Amenities, 1)
	assert.Equal(t, "Parking", detail.Amenities[0].Name)
}

// referenceGuardTxManager wraps the memory transaction manager with the
// constraint the relational backend enforces through its join-table foreign
// keys: an amenity row cannot be deleted while a place still references it.
type referenceGuardTxManager struct {
	inner repository.TransactionManager
}

func (m referenceGuardTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.inner.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return fn(referenceGuardFactory{factory})
	})
}

type referenceGuardFactory struct {
	repository.RepositoryFactory
}

func (f referenceGuardFactory) AmenityRepo() repository.AmenityRepository {
	return guardedAmenityRepository{
		AmenityRepository: f.RepositoryFactory.AmenityRepo(),
		places:            f.RepositoryFactory.PlaceRepo(),
	}
}

type guardedAmenityRepository struct {
	repository.AmenityRepository
	places repository.PlaceRepository
}

func (r guardedAmenityRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	places, err := r.places.FindAll(ctx)
	if err != nil {
		return false, err
	}
	for _, place := range places {
		for _, amenityID := range place.AmenityIDs {
			if amenityID == id {
				return false, errors.New("amenity is still referenced by a place")
			}
		}
	}

	return r.AmenityRepository.Delete(ctx, id)
}

func TestAmenityService_DeleteOfAttachedAmenity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, ownerActor := env.registerUser(t, "owner@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)

	wifi := env.createAmenity(t, adminActor, "Wi-Fi")
	place, err := env.places.CreatePlace(ctx, ownerActor, usecase.CreatePlaceInput{
		Title:      "Cabin",
		Price:      10,
		AmenityIDs: []uuid.UUID{wifi.ID},
	})
	require.NoError(t, err)

	// The guarded backend refuses to drop a still-referenced amenity row,
	// so deletion only succeeds when the service detaches it first.
	guarded := NewAmenityService(AmenityServiceParams{
		TxManager:   referenceGuardTxManager{inner: env.txManager},
		AmenityRepo: env.amenityRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, guarded.DeleteAmenity(ctx, adminActor, wifi.ID))

	stored, err := env.placeRepo.FindByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.AmenityIDs)

	_, err = env.amenities.GetAmenity(ctx, wifi.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAmenityNotFound)
}

func TestAmenityService_DeleteMissing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, adminActor := env.registerUser(t, "admin@example.com", true)

	err := env.amenities.DeleteAmenity(ctx, adminActor, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAmenityNotFound)
}
