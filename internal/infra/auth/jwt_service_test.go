package auth

import (
	"testing"

	"hbnb/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, true)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.True(t, accessClaims.IsAdmin)
	assert.Equal(t, "access", accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	assert.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New(), false)
	assert.NoError(t, err)

	// Tokens are signed with type-specific secrets, so handing the wrong
	// kind to either validator must fail.
	claims, err := jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForgedSignature(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	assert.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a_completely_different_access_secret"
	otherCfg.SecretKey.Refresh = "a_completely_different_refresh_secret"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	accessToken, _, err := otherService.GenerateTokens(uuid.New(), false)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
