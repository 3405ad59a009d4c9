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

// PlaceHandler holds dependencies for place-related handlers.
type PlaceHandler struct {
	uc     usecase.PlaceUsecase
	logger *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler, injected by Fx.
func NewPlaceHandler(uc usecase.PlaceUsecase, logger *slog.Logger) *PlaceHandler {
	return &PlaceHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePlace handles the place creation request.
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	var input usecase.CreatePlaceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	place, err := h.uc.CreatePlace(c.Request().Context(), deliverycontext.GetActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, place.Public(), "Place created successfully")
}

// GetPlace handles the request for the extended place detail view.
func (h *PlaceHandler) GetPlace(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid place id")
	}

	detail, err := h.uc.GetPlace(c.Request().Context(), placeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "Place retrieved successfully")
}

// ListPlaces handles the request to list every place.
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	places, err := h.uc.ListPlaces(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]entity.PublicPlace, 0, len(places))
	for _, place := range places {
		views = append(views, place.Public())
	}

	return response.Success(c, http.StatusOK, views, "Places retrieved successfully")
}

// UpdatePlace handles the partial place update request.
func (h *PlaceHandler) UpdatePlace(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid place id")
	}

	var input usecase.UpdatePlaceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	place, err := h.uc.UpdatePlace(c.Request().Context(), deliverycontext.GetActor(c), placeID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, place.Public(), "Place updated successfully")
}

// DeletePlace handles the place deletion request.
func (h *PlaceHandler) DeletePlace(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid place id")
	}

	if err := h.uc.DeletePlace(c.Request().Context(), deliverycontext.GetActor(c), placeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": placeID.String()}, "Place deleted successfully")
}
