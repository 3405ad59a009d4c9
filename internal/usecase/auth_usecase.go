// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"hbnb/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries a refresh token to be exchanged for new tokens.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Output DTOs ---

// TokenOutput returns the generated tokens after a successful login or refresh.
type TokenOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, input LoginInput) (*TokenOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, input RefreshInput) (*TokenOutput, error)
}
