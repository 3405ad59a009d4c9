package impl

import (
	"context"
	"log/slog"

	deliverycontext "hbnb/internal/delivery/context"
	"hbnb/internal/domain/entity"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/domain/policy"
	"hbnb/internal/domain/repository"
	"hbnb/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// placeService implements the PlaceUsecase interface.
type placeService struct {
	txManager   repository.TransactionManager
	placeRepo   repository.PlaceRepository
	userRepo    repository.UserRepository
	amenityRepo repository.AmenityRepository
	reviewRepo  repository.ReviewRepository
	logger      *slog.Logger
}

// PlaceServiceParams holds dependencies for PlaceService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PlaceRepo   repository.PlaceRepository
	UserRepo    repository.UserRepository
	AmenityRepo repository.AmenityRepository
	ReviewRepo  repository.ReviewRepository
	Logger      *slog.Logger
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	return &placeService{
		txManager:   params.TxManager,
		placeRepo:   params.PlaceRepo,
		userRepo:    params.UserRepo,
		amenityRepo: params.AmenityRepo,
		reviewRepo:  params.ReviewRepo,
		logger:      params.Logger,
	}
}

func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePlace creates a listing owned by the acting user. Every referenced
// amenity must exist; otherwise nothing is persisted.
func (srv *placeService) CreatePlace(ctx context.Context, actor entity.Actor, input usecase.CreatePlaceInput) (*entity.Place, error) {
	if !policy.CanCreatePlace(actor) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "authentication required to create a place")
	}

	newPlace, err := entity.NewPlace(input.Title, input.Description, input.Price, input.Latitude, input.Longitude, actor.ID, input.AmenityIDs)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid place input")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		amenityRepo := repoFactory.AmenityRepo()
		placeRepo := repoFactory.PlaceRepo()

		if _, err := userRepo.FindByID(ctx, newPlace.OwnerID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrOwnerNotFound, "place owner does not exist")
			}

			return errors.Wrap(err, "failed to verify place owner")
		}

		if err := verifyAmenitiesExist(ctx, amenityRepo, newPlace.AmenityIDs); err != nil {
			return err
		}

		if err := placeRepo.Create(ctx, newPlace); err != nil {
			return errors.Wrap(err, "failed to create place")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute place creation transaction", slog.Any("ownerID", actor.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Place created", slog.Any("placeID", newPlace.ID))

	return newPlace, nil
}

// GetPlace builds the extended detail view: the place plus an owner summary,
// fully resolved amenities and the reviews written about it.
func (srv *placeService) GetPlace(ctx context.Context, placeID uuid.UUID) (*usecase.PlaceDetailOutput, error) {
	place, err := srv.placeRepo.FindByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaceNotFound, "place not found")
		}

		return nil, errors.Wrap(err, "failed to find place by id")
	}

	owner, err := srv.userRepo.FindByID(ctx, place.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInconsistentState, "place owner no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load place owner")
	}

	amenities := make([]entity.PublicAmenity, 0, len(place.AmenityIDs))
	for _, amenityID := range place.AmenityIDs {
		amenity, err := srv.amenityRepo.FindByID(ctx, amenityID)
		if err != nil {
			if errors.Is(err, repository.ErrAmenityNotFound) {
				return nil, errors.Wrap(domainerrors.ErrInconsistentState, "place references a missing amenity")
			}

			return nil, errors.Wrap(err, "failed to load place amenity")
		}
		amenities = append(amenities, amenity.Public())
	}

	placeReviews, err := srv.reviewRepo.FindByPlace(ctx, placeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load place reviews")
	}
	reviews := make([]entity.PublicReview, 0, len(placeReviews))
	for _, review := range placeReviews {
		reviews = append(reviews, review.Public())
	}

	return &usecase.PlaceDetailOutput{
		PublicPlace: place.Public(),
		Owner: usecase.PlaceOwnerOutput{
			ID:        owner.ID,
			FirstName: owner.FirstName,
			LastName:  owner.LastName,
			Email:     owner.Email,
		},
		Amenities: amenities,
		Reviews:   reviews,
	}, nil
}

// ListPlaces retrieves every place.
func (srv *placeService) ListPlaces(ctx context.Context) ([]*entity.Place, error) {
	places, err := srv.placeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	return places, nil
}

// UpdatePlace applies a partial update to a place.
func (srv *placeService) UpdatePlace(ctx context.Context, actor entity.Actor, placeID uuid.UUID, input usecase.UpdatePlaceInput) (*entity.Place, error) {
	var updatedPlace *entity.Place
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		placeRepo := repoFactory.PlaceRepo()
		userRepo := repoFactory.UserRepo()
		amenityRepo := repoFactory.AmenityRepo()

		place, err := placeRepo.FindByID(ctx, placeID)
		if err != nil {
			if errors.Is(err, repository.ErrPlaceNotFound) {
				return errors.Wrap(domainerrors.ErrPlaceNotFound, "place not found")
			}

			return errors.Wrap(err, "failed to find place by id")
		}

		if !policy.CanModifyPlace(actor, place) {
			return errors.Wrap(domainerrors.ErrForbidden, "not allowed to modify this place")
		}
		if input.OwnerID != nil && !policy.CanReassignOwner(actor) {
			return errors.Wrap(domainerrors.ErrForbidden, "only an administrator can reassign a place owner")
		}

		if err := applyPlaceUpdate(ctx, userRepo, amenityRepo, place, input); err != nil {
			return err
		}

		if err := placeRepo.Update(ctx, place); err != nil {
			return errors.Wrap(err, "failed to update place")
		}
		updatedPlace = place

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute place update transaction", slog.Any("placeID", placeID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Place updated", slog.Any("placeID", placeID))

	return updatedPlace, nil
}

func applyPlaceUpdate(ctx context.Context, userRepo repository.UserRepository, amenityRepo repository.AmenityRepository, place *entity.Place, input usecase.UpdatePlaceInput) error {
	if input.Title != nil {
		if err := place.SetTitle(*input.Title); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid title")
		}
	}
	if input.Description != nil {
		place.SetDescription(*input.Description)
	}
	if input.Price != nil {
		if err := place.SetPrice(*input.Price); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid price")
		}
	}
	if input.Latitude != nil {
		if err := place.SetLatitude(*input.Latitude); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid latitude")
		}
	}
	if input.Longitude != nil {
		if err := place.SetLongitude(*input.Longitude); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid longitude")
		}
	}
	if input.OwnerID != nil {
		if _, err := userRepo.FindByID(ctx, *input.OwnerID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrOwnerNotFound, "new owner does not exist")
			}

			return errors.Wrap(err, "failed to verify new owner")
		}
		if err := place.SetOwner(*input.OwnerID); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid owner")
		}
	}
	if input.AmenityIDs != nil {
		if err := verifyAmenitiesExist(ctx, amenityRepo, *input.AmenityIDs); err != nil {
			return err
		}
		place.SetAmenities(*input.AmenityIDs)
	}

	return nil
}

// DeletePlace removes a place and every review written about it.
func (srv *placeService) DeletePlace(ctx context.Context, actor entity.Actor, placeID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		placeRepo := repoFactory.PlaceRepo()
		reviewRepo := repoFactory.ReviewRepo()

		place, err := placeRepo.FindByID(ctx, placeID)
		if err != nil {
			if errors.Is(err, repository.ErrPlaceNotFound) {
				return errors.Wrap(domainerrors.ErrPlaceNotFound, "place not found")
			}

			return errors.Wrap(err, "failed to find place by id")
		}

		if !policy.CanModifyPlace(actor, place) {
			return errors.Wrap(domainerrors.ErrForbidden, "not allowed to delete this place")
		}

		return deletePlaceWithReviews(ctx, placeRepo, reviewRepo, placeID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute place deletion transaction", slog.Any("placeID", placeID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Place deleted", slog.Any("placeID", placeID))

	return nil
}

// verifyAmenitiesExist fails with a not-found error naming the first
// missing amenity, so the caller persists nothing on a bad reference.
func verifyAmenitiesExist(ctx context.Context, amenityRepo repository.AmenityRepository, amenityIDs []uuid.UUID) error {
	for _, amenityID := range amenityIDs {
		if _, err := amenityRepo.FindByID(ctx, amenityID); err != nil {
			if errors.Is(err, repository.ErrAmenityNotFound) {
				return domainerrors.ErrAmenityNotFound.WithDetails(amenityID.String()).WrapMessage("referenced amenity does not exist")
			}

			return errors.Wrap(err, "failed to verify amenity")
		}
	}

	return nil
}
