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

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateReview handles the review creation request.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var input usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.CreateReview(c.Request().Context(), deliverycontext.GetActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review.Public(), "Review created successfully")
}

// GetReview handles the request to fetch a single review.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review id")
	}

	review, err := h.uc.GetReview(c.Request().Context(), reviewID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review.Public(), "Review retrieved successfully")
}

// ListReviews handles the request to list every review.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.uc.ListReviews(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewViews(reviews), "Reviews retrieved successfully")
}

// ListPlaceReviews handles the request to list the reviews of one place.
func (h *ReviewHandler) ListPlaceReviews(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid place id")
	}

	reviews, err := h.uc.ListReviewsByPlace(c.Request().Context(), placeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewViews(reviews), "Reviews retrieved successfully")
}

// UpdateReview handles the partial review update request.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review id")
	}

	var input usecase.UpdateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), deliverycontext.GetActor(c), reviewID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review.Public(), "Review updated successfully")
}

// DeleteReview handles the review deletion request.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review id")
	}

	if err := h.uc.DeleteReview(c.Request().Context(), deliverycontext.GetActor(c), reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": reviewID.String()}, "Review deleted successfully")
}

func toReviewViews(reviews []*entity.Review) []entity.PublicReview {
	views := make([]entity.PublicReview, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, review.Public())
	}

	return views
}
