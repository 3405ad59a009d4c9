package impl

import (
	"context"
	"testing"

	"hbnb/internal/domain/entity"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/domain/repository"
	"hbnb/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_NormalizesEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Register(ctx, entity.Anonymous(), usecase.RegisterUserInput{
		Email:     "  Alice@Example.COM ",
		Password:  "password123",
		FirstName: "Alice",
		LastName:  "Smith",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerUser(t, "alice@example.com", false)

	// Same address with different casing must still collide.
	_, err := env.users.Register(ctx, entity.Anonymous(), usecase.RegisterUserInput{
		Email:     "ALICE@example.com",
		Password:  "password123",
		FirstName: "Other",
		LastName:  "Person",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Register_AdminFlagIgnoredForNonAdmins(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Register(ctx, entity.Anonymous(), usecase.RegisterUserInput{
		Email:     "sneaky@example.com",
		Password:  "password123",
		FirstName: "Sneaky",
		LastName:  "User",
		IsAdmin:   true,
	})

	require.NoError(t, err)
	assert.False(t, user.IsAdmin)

	// An admin actor may mint admin accounts.
	admin, err := env.users.Register(ctx, entity.NewActor(uuid.New(), true), usecase.RegisterUserInput{
		Email:     "admin@example.com",
		Password:  "password123",
		FirstName: "Real",
		LastName:  "Admin",
		IsAdmin:   true,
	})

	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
}

func TestUserService_GetUser_Visibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice, aliceActor := env.registerUser(t, "alice@example.com", false)
	bob, bobActor := env.registerUser(t, "bob@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)

	found, err := env.users.GetUser(ctx, aliceActor, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	_, err = env.users.GetUser(ctx, bobActor, alice.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	found, err = env.users.GetUser(ctx, adminActor, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, found.ID)
}

func TestUserService_ListUsers_AdminOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, aliceActor := env.registerUser(t, "alice@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)

	_, err := env.users.ListUsers(ctx, aliceActor)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	users, err := env.users.ListUsers(ctx, adminActor)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_UpdateUser_ProfileFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice, aliceActor := env.registerUser(t, "alice@example.com", false)

	firstName := "Alicia"
	updated, err := env.users.UpdateUser(ctx, aliceActor, alice.ID, usecase.UpdateUserInput{
		FirstName: &firstName,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, alice.LastName, updated.LastName)
}

func TestUserService_UpdateUser_CredentialsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice, aliceActor := env.registerUser(t, "alice@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)

	// A user cannot change their own email, and the denied request must
	// leave the account untouched even when other fields were included.
	newEmail := "new@example.com"
	firstName := "Alicia"
	_, err := env.users.UpdateUser(ctx, aliceActor, alice.ID, usecase.UpdateUserInput{
		FirstName: &firstName,
		Email:     &newEmail,
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	unchanged, err := env.users.GetUser(ctx, aliceActor, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", unchanged.Email)
	assert.Equal(t, "Test", unchanged.FirstName)

	// An admin may change both email and password.
	newPassword := "newpassword123"
	updated, err := env.users.UpdateUser(ctx, adminActor, alice.ID, usecase.UpdateUserInput{
		Email:    &newEmail,
		Password: &newPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)

	// The new credentials must work for login.
	output, err := env.auth.Login(ctx, usecase.LoginInput{Email: newEmail, Password: newPassword})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, output.User.ID)
}

func TestUserService_UpdateUser_EmailConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerUser(t, "taken@example.com", false)
	bob, _ := env.registerUser(t, "bob@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)

	taken := "taken@example.com"
	_, err := env.users.UpdateUser(ctx, adminActor, bob.ID, usecase.UpdateUserInput{Email: &taken})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_DeleteUser_Cascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice, aliceActor := env.registerUser(t, "alice@example.com", false)
	_, bobActor := env.registerUser(t, "bob@example.com", false)
	carol, _ := env.registerUser(t, "carol@example.com", false)

	// Alice owns a place that Bob reviewed, and Alice reviewed Carol's place.
	alicePlace := env.createPlace(t, aliceActor, "Alice's Cabin")
	carolPlace := env.createPlace(t, entity.NewActor(carol.ID, false), "Carol's Loft")

	bobReview, err := env.reviews.CreateReview(ctx, bobActor, usecase.CreateReviewInput{
		PlaceID: alicePlace.ID,
		Text:    "Nice stay",
		Rating:  4,
	})
	require.NoError(t, err)

	aliceReview, err := env.reviews.CreateReview(ctx, aliceActor, usecase.CreateReviewInput{
		PlaceID: carolPlace.ID,
		Text:    "Lovely loft",
		Rating:  5,
	})
	require.NoError(t, err)

	require.NoError(t, env.users.DeleteUser(ctx, aliceActor, alice.ID))

	// The account, her place, the reviews about that place, and her
	// authored review elsewhere are all gone.
	_, err = env.userRepo.FindByID(ctx, alice.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = env.placeRepo.FindByID(ctx, alicePlace.ID)
	assert.ErrorIs(t, err, repository.ErrPlaceNotFound)

	_, err = env.reviewRepo.FindByID(ctx, bobReview.ID)
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)

	_, err = env.reviewRepo.FindByID(ctx, aliceReview.ID)
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)

	// Carol's place no longer references the deleted review.
	remaining, err := env.placeRepo.FindByID(ctx, carolPlace.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining.ReviewIDs)
}

func TestUserService_DeleteUser_Forbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice, _ := env.registerUser(t, "alice@example.com", false)
	_, bobActor := env.registerUser(t, "bob@example.com", false)

	err := env.users.DeleteUser(ctx, bobActor, alice.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = env.userRepo.FindByID(ctx, alice.ID)
	assert.NoError(t, err)
}

func TestUserService_GetUserByEmail_AdminOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice, aliceActor := env.registerUser(t, "alice@example.com", false)
	_, adminActor := env.registerUser(t, "admin@example.com", true)

	_, err := env.users.GetUserByEmail(ctx, aliceActor, "alice@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	found, err := env.users.GetUserByEmail(ctx, adminActor, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	_, err = env.users.GetUserByEmail(ctx, adminActor, "nobody@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
