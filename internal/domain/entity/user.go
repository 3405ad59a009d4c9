// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"strings"
	"time"

	"hbnb/internal/errors"

	"github.com/google/uuid"
)

const maxNameLength = 50

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// User is the core account entity. The stored credential is always a
// derived hash; the plaintext password never reaches this type.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Unique login identifier, stored trimmed and lower-cased.
	PasswordHash string    // Bcrypt hash of the user's password. Never serialized outward.
	FirstName    string    // The user's first name.
	LastName     string    // The user's last name.
	IsAdmin      bool      // Grants administrative privileges. Defaults to false.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// NewUser validates and constructs a User. The passwordHash argument must
// already be hashed by the caller.
func NewUser(email, passwordHash, firstName, lastName string, isAdmin bool) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errors.New("password is required")
	}

	first, err := validateName("first name", firstName)
	if err != nil {
		return nil, err
	}
	last, err := validateName("last name", lastName)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Email:        normalized,
		PasswordHash: passwordHash,
		FirstName:    first,
		LastName:     last,
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NormalizeEmail trims, lower-cases and validates an email address.
func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", errors.New("email is required")
	}
	if !emailPattern.MatchString(normalized) {
		return "", errors.Errorf("invalid email format: %s", email)
	}

	return normalized, nil
}

// SetFirstName validates and applies a new first name.
func (u *User) SetFirstName(firstName string) error {
	name, err := validateName("first name", firstName)
	if err != nil {
		return err
	}
	u.FirstName = name
	u.Touch()

	return nil
}

// SetLastName validates and applies a new last name.
func (u *User) SetLastName(lastName string) error {
	name, err := validateName("last name", lastName)
	if err != nil {
		return err
	}
	u.LastName = name
	u.Touch()

	return nil
}

// ChangeEmail validates, normalizes and applies a new email address.
// Uniqueness against other users is the service layer's responsibility.
func (u *User) ChangeEmail(email string) error {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	u.Email = normalized
	u.Touch()

	return nil
}

// ChangePassword applies a new password hash.
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return errors.New("password is required")
	}
	u.PasswordHash = passwordHash
	u.Touch()

	return nil
}

// Touch refreshes the UpdatedAt timestamp. CreatedAt is immutable after construction.
func (u *User) Touch() {
	u.UpdatedAt = time.Now().UTC()
}

// PublicUser is the canonical external representation of a User.
// It deliberately has no field for the password hash.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public returns the external representation of the user without credential material.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func validateName(field, value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", errors.Errorf("%s is required", field)
	}
	if len(name) > maxNameLength {
		return "", errors.Errorf("%s must be between 1 and %d characters", field, maxNameLength)
	}

	return name, nil
}
