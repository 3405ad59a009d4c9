package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hbnb/config"
	"hbnb/internal/domain/entity"
	"hbnb/internal/domain/repository"
	"hbnb/internal/infra/auth"
	"hbnb/internal/infra/persistence/memory"
	"hbnb/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testEnv wires every service over a shared in-memory store, so the tests
// exercise the real transaction and repository semantics end to end.
type testEnv struct {
	users     usecase.UserUsecase
	places    usecase.PlaceUsecase
	amenities usecase.AmenityUsecase
	reviews   usecase.ReviewUsecase
	auth      usecase.AuthUsecase

	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	placeRepo   repository.PlaceRepository
	amenityRepo repository.AmenityRepository
	reviewRepo  repository.ReviewRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	userRepo := memory.NewUserRepository(store)
	placeRepo := memory.NewPlaceRepository(store)
	amenityRepo := memory.NewAmenityRepository(store)
	reviewRepo := memory.NewReviewRepository(store)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return &testEnv{
		users: NewUserService(UserServiceParams{
			TxManager: txManager,
			UserRepo:  userRepo,
			Hasher:    hasher,
			Logger:    logger,
		}),
		places: NewPlaceService(PlaceServiceParams{
			TxManager:   txManager,
			PlaceRepo:   placeRepo,
			UserRepo:    userRepo,
			AmenityRepo: amenityRepo,
			ReviewRepo:  reviewRepo,
			Logger:      logger,
		}),
		amenities: NewAmenityService(AmenityServiceParams{
			TxManager:   txManager,
			AmenityRepo: amenityRepo,
			Logger:      logger,
		}),
		reviews: NewReviewService(ReviewServiceParams{
			TxManager:  txManager,
			ReviewRepo: reviewRepo,
			Logger:     logger,
		}),
		auth: NewAuthService(AuthServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       logger,
		}),
		txManager:   txManager,
		userRepo:    userRepo,
		placeRepo:   placeRepo,
		amenityRepo: amenityRepo,
		reviewRepo:  reviewRepo,
	}
}

// registerUser creates an account and returns its entity and acting identity.
// Admin accounts are minted through an admin actor, as production would.
func (env *testEnv) registerUser(t *testing.T, email string, isAdmin bool) (*entity.User, entity.Actor) {
	t.Helper()

	actor := entity.Anonymous()
	if isAdmin {
		actor = entity.NewActor(uuid.New(), true)
	}

	user, err := env.users.Register(context.Background(), actor, usecase.RegisterUserInput{
		Email:     email,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
		IsAdmin:   isAdmin,
	})
	require.NoError(t, err)

	return user, entity.NewActor(user.ID, user.IsAdmin)
}

// createPlace creates a listing owned by the given actor.
func (env *testEnv) createPlace(t *testing.T, owner entity.Actor, title string) *entity.Place {
	t.Helper()

	place, err := env.places.CreatePlace(context.Background(), owner, usecase.CreatePlaceInput{
		Title:     title,
		Price:     100,
		Latitude:  48.85,
		Longitude: 2.35,
	})
	require.NoError(t, err)

	return place
}

// createAmenity creates an amenity through an admin actor.
func (env *testEnv) createAmenity(t *testing.T, admin entity.Actor, name string) *entity.Amenity {
	t.Helper()

	amenity, err := env.amenities.CreateAmenity(context.Background(), admin, usecase.CreateAmenityInput{Name: name})
	require.NoError(t, err)

	return amenity
}
