// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hbnb/config"
	"hbnb/internal/domain/service"
	"hbnb/internal/errors"
)

const (
	defaultAccessTTL  = time.Minute * 15
	defaultRefreshTTL = time.Hour * 24 * 7
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(userID uuid.UUID, isAdmin bool) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, isAdmin, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, isAdmin, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken checks the validity of an access token string.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.accessSecret, service.TokenTypeAccess)
}

// ValidateRefreshToken checks the validity of a refresh token string.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, isAdmin bool, ttl time.Duration, secret, tokenType string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      userID.String(),            // Subject (who the token is for)
		"iat":      time.Now().Unix(),          // Issued At
		"exp":      time.Now().Add(ttl).Unix(), // Expiration Time
		"type":     tokenType,                  // Type of token (access or refresh)
		"is_admin": isAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// validateToken parses a token string, verifies its signature and expiry,
// and checks the token type discriminator.
func (s *jwtService) validateToken(tokenString, secret, wantType string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token structure")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != wantType {
		return nil, errors.Errorf("unexpected token type: %s", tokenType)
	}

	subject, _ := mapClaims["sub"].(string)
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token subject")
	}

	isAdmin, _ := mapClaims["is_admin"].(bool)

	return &service.Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		Type:    tokenType,
	}, nil
}
