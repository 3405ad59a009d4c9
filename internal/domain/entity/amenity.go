package entity

import (
	"strings"
	"time"

	"hbnb/internal/errors"

	"github.com/google/uuid"
)

const maxAmenityNameLength = 50

// Amenity is a feature a place can offer, such as "Wi-Fi" or "Parking".
// Amenities are shared across places; deleting one never deletes a place.
type Amenity struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the amenity.
	Name      string    // Display name, non-empty, at most 50 characters.
	CreatedAt time.Time // Timestamp of when this amenity was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// NewAmenity validates and constructs an Amenity.
func NewAmenity(name string) (*Amenity, error) {
	clean, err := validateAmenityName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Amenity{
		ID:        uuid.New(),
		Name:      clean,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetName validates and applies a new name.
func (a *Amenity) SetName(name string) error {
	clean, err := validateAmenityName(name)
	if err != nil {
		return err
	}
	a.Name = clean
	a.Touch()

	return nil
}

// Touch refreshes the UpdatedAt timestamp.
func (a *Amenity) Touch() {
	a.UpdatedAt = time.Now().UTC()
}

// PublicAmenity is the canonical external representation of an Amenity.
type PublicAmenity struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public returns the external representation of the amenity.
func (a *Amenity) Public() PublicAmenity {
	return PublicAmenity{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func validateAmenityName(name string) (string, error) {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return "", errors.New("amenity name is required")
	}
	if len(clean) > maxAmenityNameLength {
		return "", errors.Errorf("amenity name must be %d characters or less", maxAmenityNameLength)
	}

	return clean, nil
}
