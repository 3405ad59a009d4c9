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

// AmenityHandler holds dependencies for amenity-related handlers.
type AmenityHandler struct {
	uc     usecase.AmenityUsecase
	logger *slog.Logger
}

// NewAmenityHandler is the constructor for AmenityHandler, injected by Fx.
func NewAmenityHandler(uc usecase.AmenityUsecase, logger *slog.Logger) *AmenityHandler {
	return &AmenityHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateAmenity handles the amenity creation request.
func (h *AmenityHandler) CreateAmenity(c echo.Context) error {
	var input usecase.CreateAmenityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid amenity input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	amenity, err := h.uc.CreateAmenity(c.Request().Context(), deliverycontext.GetActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, amenity.Public(), "Amenity created successfully")
}

// GetAmenity handles the request to fetch a single amenity.
func (h *AmenityHandler) GetAmenity(c echo.Context) error {
	amenityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid amenity id")
	}

	amenity, err := h.uc.GetAmenity(c.Request().Context(), amenityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, amenity.Public(), "Amenity retrieved successfully")
}

// ListAmenities handles the request to list every amenity.
func (h *AmenityHandler) ListAmenities(c echo.Context) error {
	amenities, err := h.uc.ListAmenities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]entity.PublicAmenity, 0, len(amenities))
	for _, amenity := range amenities {
		views = append(views, amenity.Public())
	}

	return response.Success(c, http.StatusOK, views, "Amenities retrieved successfully")
}

// UpdateAmenity handles the amenity rename request.
func (h *AmenityHandler) UpdateAmenity(c echo.Context) error {
	amenityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid amenity id")
	}

	var input usecase.UpdateAmenityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	amenity, err := h.uc.UpdateAmenity(c.Request().Context(), deliverycontext.GetActor(c), amenityID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, amenity.Public(), "Amenity updated successfully")
}

// DeleteAmenity handles the amenity deletion request.
func (h *AmenityHandler) DeleteAmenity(c echo.Context) error {
	amenityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid amenity id")
	}

	if err := h.uc.DeleteAmenity(c.Request().Context(), deliverycontext.GetActor(c), amenityID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": amenityID.String()}, "Amenity deleted successfully")
}
