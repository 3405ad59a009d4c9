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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview creates a review authored by the actor and appends it to the
// place's review list, both inside one transaction.
func (srv *reviewService) CreateReview(ctx context.Context, actor entity.Actor, input usecase.CreateReviewInput) (*entity.Review, error) {
	if !policy.CanCreateReview(actor) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "authentication required to create a review")
	}

	newReview, err := entity.NewReview(input.Text, input.Rating, actor.ID, input.PlaceID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid review input")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		placeRepo := repoFactory.PlaceRepo()
		reviewRepo := repoFactory.ReviewRepo()

		if _, err := userRepo.FindByID(ctx, newReview.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "review author does not exist")
			}

			return errors.Wrap(err, "failed to verify review author")
		}

		place, err := placeRepo.FindByID(ctx, newReview.PlaceID)
		if err != nil {
			if errors.Is(err, repository.ErrPlaceNotFound) {
				return errors.Wrap(domainerrors.ErrPlaceNotFound, "reviewed place does not exist")
			}

			return errors.Wrap(err, "failed to find reviewed place")
		}

		if place.OwnerID == newReview.UserID {
			return errors.Wrap(domainerrors.ErrValidationFailed, "you cannot review your own place")
		}

		_, findErr := reviewRepo.FindByUserAndPlace(ctx, newReview.UserID, newReview.PlaceID)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrAlreadyReviewed, "user has already reviewed this place")
		}
		if !errors.Is(findErr, repository.ErrReviewNotFound) {
			return errors.Wrap(findErr, "failed to check for an existing review")
		}

		if err := reviewRepo.Create(ctx, newReview); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		// Second write of the pair: the place's review list.
		place.AddReview(newReview.ID)
		if err := placeRepo.Update(ctx, place); err != nil {
			return errors.Wrap(err, "failed to attach review to place")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute review creation transaction", slog.Any("placeID", input.PlaceID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Review created", slog.Any("reviewID", newReview.ID))

	return newReview, nil
}

// GetReview retrieves a single review.
func (srv *reviewService) GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return review, nil
}

// ListReviews retrieves every review.
func (srv *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// ListReviewsByPlace retrieves every review about one place.
func (srv *reviewService) ListReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByPlace(ctx, placeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list place reviews")
	}

	return reviews, nil
}

// UpdateReview applies a partial update to a review. Author or admin.
func (srv *reviewService) UpdateReview(ctx context.Context, actor entity.Actor, reviewID uuid.UUID, input usecase.UpdateReviewInput) (*entity.Review, error) {
	var updatedReview *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to find review by id")
		}

		if !policy.CanModifyReview(actor, review) {
			return errors.Wrap(domainerrors.ErrForbidden, "not allowed to modify this review")
		}

		if input.Text != nil {
			if err := review.SetText(*input.Text); err != nil {
				return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid review text")
			}
		}
		if input.Rating != nil {
			if err := review.SetRating(*input.Rating); err != nil {
				return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid rating")
			}
		}

		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}
		updatedReview = review

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute review update transaction", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return nil, err
	}

	return updatedReview, nil
}

// DeleteReview removes a review and drops it from its place's review list
// inside one transaction. Author or admin.
func (srv *reviewService) DeleteReview(ctx context.Context, actor entity.Actor, reviewID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		placeRepo := repoFactory.PlaceRepo()
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to find review by id")
		}

		if !policy.CanModifyReview(actor, review) {
			return errors.Wrap(domainerrors.ErrForbidden, "not allowed to delete this review")
		}

		return detachAndDeleteReview(ctx, placeRepo, reviewRepo, review)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute review deletion transaction", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Review deleted", slog.Any("reviewID", reviewID))

	return nil
}
