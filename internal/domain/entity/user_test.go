package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Success(t *testing.T) {
	user, err := NewUser("  Alice@Example.COM ", "hashed-secret", " Alice ", "Smith", false)

	require.NoError(t, err)
	assert.NotEqual(t, "", user.ID.String())
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "Smith", user.LastName)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestNewUser_InvalidEmail(t *testing.T) {
	tests := []string{"", "   ", "not-an-email", "missing@tld", "@example.com"}
	for _, email := range tests {
		t.Run(email, func(t *testing.T) {
			_, err := NewUser(email, "hash", "First", "Last", false)
			assert.Error(t, err)
		})
	}
}

func TestNewUser_NameBounds(t *testing.T) {
	longName := strings.Repeat("a", 51)

	_, err := NewUser("a@b.com", "hash", longName, "Last", false)
	assert.Error(t, err)

	_, err = NewUser("a@b.com", "hash", "First", longName, false)
	assert.Error(t, err)

	_, err = NewUser("a@b.com", "hash", "", "Last", false)
	assert.Error(t, err)

	user, err := NewUser("a@b.com", "hash", strings.Repeat("a", 50), "Last", false)
	require.NoError(t, err)
	assert.Len(t, user.FirstName, 50)
}

func TestNewUser_MissingPassword(t *testing.T) {
	_, err := NewUser("a@b.com", "", "First", "Last", false)
	assert.Error(t, err)
}

func TestUser_ChangeEmail(t *testing.T) {
	user, err := NewUser("a@b.com", "hash", "First", "Last", false)
	require.NoError(t, err)

	require.NoError(t, user.ChangeEmail("  NEW@Example.com "))
	assert.Equal(t, "new@example.com", user.Email)

	assert.Error(t, user.ChangeEmail("nope"))
	assert.Equal(t, "new@example.com", user.Email)
}

func TestUser_PublicOmitsPasswordHash(t *testing.T) {
	user, err := NewUser("a@b.com", "hashed-secret", "First", "Last", true)
	require.NoError(t, err)

	raw, err := json.Marshal(user.Public())
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "hashed-secret")
	assert.NotContains(t, string(raw), "password")
	assert.Contains(t, string(raw), "a@b.com")
}
