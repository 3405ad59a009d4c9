// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "hbnb/internal/delivery/context"
	"hbnb/internal/domain/entity"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/domain/policy"
	"hbnb/internal/domain/repository"
	"hbnb/internal/domain/service"
	"hbnb/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, actor entity.Actor, input usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("email", input.Email))

	// Only admins may mint admin accounts; for everyone else the flag is ignored.
	isAdmin := input.IsAdmin && policy.CanCreateAdmin(actor)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser, err := entity.NewUser(input.Email, hashedPassword, input.FirstName, input.LastName, isAdmin)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid registration input")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, newUser.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email uniqueness")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", newUser.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// GetUser retrieves a single user, visible to the user themselves and admins.
func (srv *userService) GetUser(ctx context.Context, actor entity.Actor, userID uuid.UUID) (*entity.User, error) {
	if !policy.CanViewUser(actor, userID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not allowed to view this user")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// GetUserByEmail retrieves a user by their email address. Admin only.
func (srv *userService) GetUserByEmail(ctx context.Context, actor entity.Actor, email string) (*entity.User, error) {
	if !policy.CanListUsers(actor) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not allowed to look up users by email")
	}

	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid email")
	}

	user, err := srv.userRepo.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// ListUsers retrieves every user. Admin only.
func (srv *userService) ListUsers(ctx context.Context, actor entity.Actor) ([]*entity.User, error) {
	if !policy.CanListUsers(actor) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not allowed to list users")
	}

	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser applies a partial update to a user's profile.
func (srv *userService) UpdateUser(ctx context.Context, actor entity.Actor, userID uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	if !policy.CanModifyUser(actor, userID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not allowed to modify this user")
	}

	// Email and password are credential fields. They are rejected up front,
	// before any mutation, so a denied request changes nothing.
	if (input.Email != nil || input.Password != nil) && !policy.CanChangeCredentials(actor) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "email and password can only be changed by an administrator")
	}

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if err := srv.applyUserUpdate(ctx, userRepo, user, input); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute user update transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User updated", slog.Any("userID", userID))

	return updatedUser, nil
}

func (srv *userService) applyUserUpdate(ctx context.Context, userRepo repository.UserRepository, user *entity.User, input usecase.UpdateUserInput) error {
	if input.FirstName != nil {
		if err := user.SetFirstName(*input.FirstName); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid first name")
		}
	}
	if input.LastName != nil {
		if err := user.SetLastName(*input.LastName); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid last name")
		}
	}
	if input.Email != nil {
		normalized, err := entity.NormalizeEmail(*input.Email)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid email")
		}
		if normalized != user.Email {
			existing, findErr := userRepo.FindByEmail(ctx, normalized)
			if findErr == nil && existing.ID != user.ID {
				return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered")
			}
			if findErr != nil && !errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(findErr, "failed to check email uniqueness")
			}
		}
		if err := user.ChangeEmail(normalized); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid email")
		}
	}
	if input.Password != nil {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
		}
		if err := user.ChangePassword(hashedPassword); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("invalid password")
		}
	}

	return nil
}

// DeleteUser removes a user and cascades to their owned places, those
// places' reviews, and every review the user authored elsewhere.
func (srv *userService) DeleteUser(ctx context.Context, actor entity.Actor, userID uuid.UUID) error {
	if !policy.CanDeleteUser(actor, userID) {
		return errors.Wrap(domainerrors.ErrForbidden, "not allowed to delete this user")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		placeRepo := repoFactory.PlaceRepo()
		reviewRepo := repoFactory.ReviewRepo()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		// 1. Delete owned places together with their reviews.
		ownedPlaces, err := placeRepo.FindByOwner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list owned places")
		}
		for _, place := range ownedPlaces {
			if err := deletePlaceWithReviews(ctx, placeRepo, reviewRepo, place.ID); err != nil {
				return err
			}
		}

		// 2. Delete reviews the user authored on other places.
		authoredReviews, err := reviewRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list authored reviews")
		}
		for _, review := range authoredReviews {
			if err := detachAndDeleteReview(ctx, placeRepo, reviewRepo, review); err != nil {
				return err
			}
		}

		// 3. Delete the user itself.
		removed, err := userRepo.Delete(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to delete user")
		}
		if !removed {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user disappeared during deletion")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute user deletion transaction", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", userID))

	return nil
}

// deletePlaceWithReviews removes a place and every review written about it.
func deletePlaceWithReviews(ctx context.Context, placeRepo repository.PlaceRepository, reviewRepo repository.ReviewRepository, placeID uuid.UUID) error {
	reviews, err := reviewRepo.FindByPlace(ctx, placeID)
	if err != nil {
		return errors.Wrap(err, "failed to list place reviews")
	}
	for _, review := range reviews {
		if _, err := reviewRepo.Delete(ctx, review.ID); err != nil {
			return errors.Wrap(err, "failed to delete place review")
		}
	}

	if _, err := placeRepo.Delete(ctx, placeID); err != nil {
		return errors.Wrap(err, "failed to delete place")
	}

	return nil
}

// detachAndDeleteReview removes a review and drops it from its place's
// review list. A missing place is tolerated; the review still goes away.
func detachAndDeleteReview(ctx context.Context, placeRepo repository.PlaceRepository, reviewRepo repository.ReviewRepository, review *entity.Review) error {
	place, err := placeRepo.FindByID(ctx, review.PlaceID)
	if err == nil {
		if place.RemoveReview(review.ID) {
			if updateErr := placeRepo.Update(ctx, place); updateErr != nil {
				return errors.Wrap(updateErr, "failed to detach review from place")
			}
		}
	} else if !errors.Is(err, repository.ErrPlaceNotFound) {
		return errors.Wrap(err, "failed to find reviewed place")
	}

	if _, err := reviewRepo.Delete(ctx, review.ID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}
