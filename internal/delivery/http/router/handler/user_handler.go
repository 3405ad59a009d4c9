package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "hbnb/internal/delivery/context"
	"hbnb/internal/delivery/http/response"
	"hbnb/internal/domain/entity"
	"hbnb/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Register(c.Request().Context(), deliverycontext.GetActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Do not return sensitive data in the response.
	return response.Success(c, http.StatusCreated, user.Public(), "User registered successfully")
}

// GetUser handles the request to fetch a single user.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	user, err := h.uc.GetUser(c.Request().Context(), deliverycontext.GetActor(c), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user.Public(), "User retrieved successfully")
}

// ListUsers handles the request to list every user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]entity.PublicUser, 0, len(users))
	for _, user := range users {
		views = append(views, user.Public())
	}

	return response.Success(c, http.StatusOK, views, "Users retrieved successfully")
}

// UpdateUser handles the partial user update request.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), deliverycontext.GetActor(c), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user.Public(), "User updated successfully")
}

// DeleteUser handles the user deletion request.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), deliverycontext.GetActor(c), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": userID.String()}, "User deleted successfully")
}
