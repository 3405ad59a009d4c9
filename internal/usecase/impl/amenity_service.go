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

// amenityService implements the AmenityUsecase interface.
type amenityService struct {
	txManager   repository.TransactionManager
	amenityRepo repository.AmenityRepository
	logger      *slog.Logger
}

// AmenityServiceParams holds dependencies for AmenityService, injected by Fx.
type AmenityServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AmenityRepo repository.AmenityRepository
	Logger      *slog.Logger
}

// NewAmenityService is the constructor for amenityService.
func NewAmenityService(params AmenityServiceParams) usecase.AmenityUsecase {
	return &amenityService{
		txManager:   params.TxManager,
		amenityRepo: params.AmenityRepo,
		logger:      params.Logger,
	}
}

func (srv *amenityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAmenity creates a new amenity. Admin only; names are unique.
func (srv *amenityService) CreateAmenity(ctx context.Context, actor entity.Actor, input usecase.CreateAmenityInput) (*entity.Amenity, error) {
	if !policy.CanMutateAmenity(actor) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only an administrator can create amenities")
	}

	newAmenity, err := entity.NewAmenity(input.Name)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid amenity input")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		amenityRepo := repoFactory.AmenityRepo()

		_, findErr := amenityRepo.FindByName(ctx, newAmenity.Name)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrAmenityAlreadyExists, "amenity name already exists")
		}
		if !errors.Is(findErr, repository.ErrAmenityNotFound) {
			return errors.Wrap(findErr, "failed to check amenity name uniqueness")
		}

		if createErr := amenityRepo.Create(ctx, newAmenity); createErr != nil {
			return errors.Wrap(createErr, "failed to create amenity")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute amenity creation transaction", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Amenity created", slog.Any("amenityID", newAmenity.ID))

	return newAmenity, nil
}

// GetAmenity retrieves a single amenity.
func (srv *amenityService) GetAmenity(ctx context.Context, amenityID uuid.UUID) (*entity.Amenity, error) {
	amenity, err := srv.amenityRepo.FindByID(ctx, amenityID)
	if err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAmenityNotFound, "amenity not found")
		}

		return nil, errors.Wrap(err, "failed to find amenity by id")
	}

	return amenity, nil
}

// ListAmenities retrieves every amenity.
func (srv *amenityService) ListAmenities(ctx context.Context) ([]*entity.Amenity, error) {
	amenities, err := srv.amenityRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list amenities")
	}

	return amenities, nil
}

// UpdateAmenity renames an amenity. Admin only.
func (srv *amenityService) UpdateAmenity(ctx context.Context, actor entity.Actor, amenityID uuid.UUID, input usecase.UpdateAmenityInput) (*entity.Amenity, error) {
	if !policy.CanMutateAmenity(actor) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only an administrator can update amenities")
	}

	var updatedAmenity *entity.Amenity
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		amenityRepo := repoFactory.AmenityRepo()

		amenity, err := amenityRepo.FindByID(ctx, amenityID)
		if err != nil {
			if errors.Is(err, repository.ErrAmenityNotFound) {
				return errors.Wrap(domainerrors.ErrAmenityNotFound, "amenity not found")
			}

			return errors.Wrap(err, "failed to find amenity by id")
		}

		existing, findErr := amenityRepo.FindByName(ctx, input.Name)
		if findErr == nil && existing.ID != amenity.ID {
			return errors.Wrap(domainerrors.ErrAmenityAlreadyExists, "amenity name already exists")
		}
		if findErr != nil && !errors.Is(findErr, repository.ErrAmenityNotFound) {
			return errors.Wrap(findErr, "failed to check amenity name uniqueness")
		}

		if err := amenity.SetName(input.Name); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid amenity name")
		}

		if err := amenityRepo.Update(ctx, amenity); err != nil {
			return errors.Wrap(err, "failed to update amenity")
		}
		updatedAmenity = amenity

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute amenity update transaction", slog.Any("amenityID", amenityID), slog.Any("error", err))

		return nil, err
	}

	return updatedAmenity, nil
}

// DeleteAmenity detaches an amenity from every place that references it and
// then removes it, all in one transaction. Admin only.
func (srv *amenityService) DeleteAmenity(ctx context.Context, actor entity.Actor, amenityID uuid.UUID) error {
	if !policy.CanMutateAmenity(actor) {
		return errors.Wrap(domainerrors.ErrForbidden, "only an administrator can delete amenities")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		amenityRepo := repoFactory.AmenityRepo()
		placeRepo := repoFactory.PlaceRepo()

		if _, err := amenityRepo.FindByID(ctx, amenityID); err != nil {
			if errors.Is(err, repository.ErrAmenityNotFound) {
				return errors.Wrap(domainerrors.ErrAmenityNotFound, "amenity not found")
			}

			return errors.Wrap(err, "failed to find amenity by id")
		}

		// Detach first: the join-table foreign keys must never see the
		// amenity row disappear while a place still references it.
		places, err := placeRepo.FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list places for amenity detach")
		}
		for _, place := range places {
			remaining := make([]uuid.UUID, 0, len(place.AmenityIDs))
			for _, id := range place.AmenityIDs {
				if id != amenityID {
					remaining = append(remaining, id)
				}
			}
			if len(remaining) == len(place.AmenityIDs) {
				continue
			}
			place.SetAmenities(remaining)
			if err := placeRepo.Update(ctx, place); err != nil {
				return errors.Wrap(err, "failed to detach amenity from place")
			}
		}

		removed, err := amenityRepo.Delete(ctx, amenityID)
		if err != nil {
			return errors.Wrap(err, "failed to delete amenity")
		}
		if !removed {
			return errors.Wrap(domainerrors.ErrAmenityNotFound, "amenity not found")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute amenity deletion transaction", slog.Any("amenityID", amenityID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Amenity deleted", slog.Any("amenityID", amenityID))

	return nil
}
