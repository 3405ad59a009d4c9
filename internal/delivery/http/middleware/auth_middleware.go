package middleware

import (
	"strings"

	deliverycontext "hbnb/internal/delivery/context"
	"hbnb/internal/delivery/http/response"
	"hbnb/internal/domain/entity"
	"hbnb/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and stores the resulting
// actor on the request context. Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, errMsg := m.resolveActor(c)
		if errMsg != "" {
			return response.Unauthorized(c, "UNAUTHORIZED", errMsg)
		}
		if !actor.Authenticated {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// OptionalAuthenticate resolves the actor when a token is present but lets
// anonymous requests through. Registration uses this: anyone may register,
// but only an authenticated admin may create admin accounts.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, errMsg := m.resolveActor(c)
		if errMsg != "" {
			return response.Unauthorized(c, "UNAUTHORIZED", errMsg)
		}

		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// resolveActor extracts the actor from the Authorization header. A missing
// header yields the anonymous actor; a malformed or invalid token yields a
// non-empty error message.
func (m *AuthMiddleware) resolveActor(c echo.Context) (entity.Actor, string) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return entity.Anonymous(), ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return entity.Anonymous(), "Invalid token format, must be Bearer token"
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return entity.Anonymous(), "Invalid or expired token"
	}

	return entity.NewActor(claims.UserID, claims.IsAdmin), ""
}
