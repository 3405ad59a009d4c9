// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hbnb/internal/delivery/http/middleware"
	"hbnb/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	PlaceHandler   *handler.PlaceHandler
	AmenityHandler *handler.AmenityHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	placeHandler   *handler.PlaceHandler
	amenityHandler *handler.AmenityHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		placeHandler:   params.PlaceHandler,
		amenityHandler: params.AmenityHandler,
		reviewHandler:  params.ReviewHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
	}

	// User routes. Registration is open; an authenticated admin may use
	// the same endpoint to create admin accounts, so the actor is resolved
	// when a token is present.
	userGroup := api.Group("/users")
	{
		userGroup.POST("", r.userHandler.RegisterUser, r.authMiddleware.OptionalAuthenticate)
		userGroup.GET("", r.userHandler.ListUsers, r.authMiddleware.Authenticate)
		userGroup.GET("/:id", r.userHandler.GetUser, r.authMiddleware.Authenticate)
		userGroup.PUT("/:id", r.userHandler.UpdateUser, r.authMiddleware.Authenticate)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser, r.authMiddleware.Authenticate)
	}

	// Place routes. Reads are public, mutations require authentication.
	placeGroup := api.Group("/places")
	{
		placeGroup.GET("", r.placeHandler.ListPlaces)
		placeGroup.GET("/:id", r.placeHandler.GetPlace)
		placeGroup.GET("/:id/reviews", r.reviewHandler.ListPlaceReviews)
		placeGroup.POST("", r.placeHandler.CreatePlace, r.authMiddleware.Authenticate)
		placeGroup.PUT("/:id", r.placeHandler.UpdatePlace, r.authMiddleware.Authenticate)
		placeGroup.DELETE("/:id", r.placeHandler.DeletePlace, r.authMiddleware.Authenticate)
	}

	// Amenity routes. Reads are public, mutations are admin only and the
	// usecase enforces the admin check.
	amenityGroup := api.Group("/amenities")
	{
		amenityGroup.GET("", r.amenityHandler.ListAmenities)
		amenityGroup.GET("/:id", r.amenityHandler.GetAmenity)
		amenityGroup.POST("", r.amenityHandler.CreateAmenity, r.authMiddleware.Authenticate)
		amenityGroup.PUT("/:id", r.amenityHandler.UpdateAmenity, r.authMiddleware.Authenticate)
		amenityGroup.DELETE("/:id", r.amenityHandler.DeleteAmenity, r.authMiddleware.Authenticate)
	}

	// Review routes. Reads are public, mutations require authentication.
	reviewGroup := api.Group("/reviews")
	{
		reviewGroup.GET("", r.reviewHandler.ListReviews)
		reviewGroup.GET("/:id", r.reviewHandler.GetReview)
		reviewGroup.POST("", r.reviewHandler.CreateReview, r.authMiddleware.Authenticate)
		reviewGroup.PUT("/:id", r.reviewHandler.UpdateReview, r.authMiddleware.Authenticate)
		reviewGroup.DELETE("/:id", r.reviewHandler.DeleteReview, r.authMiddleware.Authenticate)
	}
}
