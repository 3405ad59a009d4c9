// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
	"time"

	"hbnb/internal/errors"

	"github.com/google/uuid"
)

const maxTitleLength = 100

// Place is a rental listing owned by exactly one User. It keeps a
// denormalized list of its review ids; the review service maintains that
// back-reference so Place.ReviewIDs never contains a dangling id.
type Place struct {
	ID          uuid.UUID   // The Global Unique Identifier (GUID) for the place.
	Title       string      // Listing title, non-empty, at most 100 characters.
	Description string      // Optional free-text description.
	Price       float64     // Price per night, never negative.
	Latitude    float64     // Geographic latitude, in [-90, 90].
	Longitude   float64     // Geographic longitude, in [-180, 180].
	OwnerID     uuid.UUID   // The User that owns this place. Required at creation.
	AmenityIDs  []uuid.UUID // Non-owning many-to-many association with amenities.
	ReviewIDs   []uuid.UUID // Owned reviews; deleted together with the place.
	CreatedAt   time.Time   // Timestamp of when this place was created.
	UpdatedAt   time.Time   // Timestamp of the last modification.
}

// NewPlace validates and constructs a Place. Referential existence of the
// owner and the amenities is the service layer's responsibility.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID uuid.UUID, amenityIDs []uuid.UUID) (*Place, error) {
	cleanTitle, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateLatitude(latitude); err != nil {
		return nil, err
	}
	if err := validateLongitude(longitude); err != nil {
		return nil, err
	}
	if ownerID == uuid.Nil {
		return nil, errors.New("owner id is required")
	}

	now := time.Now().UTC()

	return &Place{
		ID:          uuid.New(),
		Title:       cleanTitle,
		Description: strings.TrimSpace(description),
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		AmenityIDs:  dedupeIDs(amenityIDs),
		ReviewIDs:   []uuid.UUID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetTitle validates and applies a new title.
func (p *Place) SetTitle(title string) error {
	clean, err := validateTitle(title)
	if err != nil {
		return err
	}
	p.Title = clean
	p.Touch()

	return nil
}

// SetDescription trims and applies a new description.
func (p *Place) SetDescription(description string) {
	p.Description = strings.TrimSpace(description)
	p.Touch()
}

// SetPrice validates and applies a new price.
func (p *Place) SetPrice(price float64) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.Price = price
	p.Touch()

	return nil
}

// SetLatitude validates and applies a new latitude.
func (p *Place) SetLatitude(latitude float64) error {
	if err := validateLatitude(latitude); err != nil {
		return err
	}
	p.Latitude = latitude
	p.Touch()

	return nil
}

// SetLongitude validates and applies a new longitude.
func (p *Place) SetLongitude(longitude float64) error {
	if err := validateLongitude(longitude); err != nil {
		return err
	}
	p.Longitude = longitude
	p.Touch()

	return nil
}

// SetOwner reassigns the place to a new owner. Existence of the new owner
// is checked by the service layer before this is called.
func (p *Place) SetOwner(ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return errors.New("owner id is required")
	}
	p.OwnerID = ownerID
	p.Touch()

	return nil
}

// SetAmenities replaces the amenity association with the given set.
func (p *Place) SetAmenities(amenityIDs []uuid.UUID) {
	p.AmenityIDs = dedupeIDs(amenityIDs)
	p.Touch()
}

// AddReview appends a review id to the owned review list.
func (p *Place) AddReview(reviewID uuid.UUID) {
	if !slices.Contains(p.ReviewIDs, reviewID) {
		p.ReviewIDs = append(p.ReviewIDs, reviewID)
	}
	p.Touch()
}

// RemoveReview drops a review id from the owned review list. It reports
// whether the id was present.
func (p *Place) RemoveReview(reviewID uuid.UUID) bool {
	idx := slices.Index(p.ReviewIDs, reviewID)
	if idx < 0 {
		return false
	}
	p.ReviewIDs = slices.Delete(p.ReviewIDs, idx, idx+1)
	p.Touch()

	return true
}

// Touch refreshes the UpdatedAt timestamp.
func (p *Place) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

// PublicPlace is the canonical external representation of a Place.
type PublicPlace struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids"`
	ReviewIDs   []uuid.UUID `json:"review_ids"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Public returns the external representation of the place.
func (p *Place) Public() PublicPlace {
	return PublicPlace{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
		AmenityIDs:  slices.Clone(p.AmenityIDs),
		ReviewIDs:   slices.Clone(p.ReviewIDs),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func validateTitle(title string) (string, error) {
	clean := strings.TrimSpace(title)
	if clean == "" {
		return "", errors.New("title is required")
	}
	if len(clean) > maxTitleLength {
		return "", errors.Errorf("title must be %d characters or less", maxTitleLength)
	}

	return clean, nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return errors.New("price must be a non-negative number")
	}

	return nil
}

func validateLatitude(latitude float64) error {
	if latitude < -90 || latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}

	return nil
}

func validateLongitude(longitude float64) error {
	if longitude < -180 || longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}

	return nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != uuid.Nil && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}

	return out
}
