// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"hbnb/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
// IsAdmin only takes effect when the acting caller is an administrator;
// for anyone else it is silently ignored.
type RegisterUserInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateUserInput defines the data for a partial user update.
// Nil fields are left untouched.
type UpdateUserInput struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=50"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new user account. Open to anonymous actors;
	// only admin actors may set IsAdmin on the new account.
	Register(ctx context.Context, actor entity.Actor, input RegisterUserInput) (*entity.User, error)

	// GetUser retrieves a single user. Self or admin only.
	GetUser(ctx context.Context, actor entity.Actor, userID uuid.UUID) (*entity.User, error)

	// GetUserByEmail retrieves a user by email address. Admin only.
	GetUserByEmail(ctx context.Context, actor entity.Actor, email string) (*entity.User, error)

	// ListUsers retrieves every user. Admin only.
	ListUsers(ctx context.Context, actor entity.Actor) ([]*entity.User, error)

	// UpdateUser applies a partial update. Self or admin; email and
	// password changes are admin only.
	UpdateUser(ctx context.Context, actor entity.Actor, userID uuid.UUID, input UpdateUserInput) (*entity.User, error)

	// DeleteUser removes a user together with their owned places, those
	// places' reviews, and the user's authored reviews.
	DeleteUser(ctx context.Context, actor entity.Actor, userID uuid.UUID) error
}
