package impl

import (
	"context"
	"log/slog"

	deliverycontext "hbnb/internal/delivery/context"
	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/domain/repository"
	"hbnb/internal/domain/service"
	"hbnb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and issues a fresh access/refresh token pair.
// Lookup failures and password mismatches produce the same error so the
// response never reveals whether the email is registered.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// bcrypt comparison happens outside any transaction (CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.IsAdmin)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.TokenOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The user is
// re-read so a revoked admin flag takes effect on the next refresh.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.IsAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.TokenOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
