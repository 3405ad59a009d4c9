// Package model contains the GORM table definitions for the relational
// persistence backend.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(50);not null"`
	LastName     string    `gorm:"type:varchar(50);not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Places  []PlaceModel  `gorm:"foreignKey:OwnerID"`
	Reviews []ReviewModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PlaceModel mirrors the 'places' table.
type PlaceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"not null"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Amenities []AmenityModel `gorm:"many2many:place_amenities"`
	Reviews   []ReviewModel  `gorm:"foreignKey:PlaceID"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}

// AmenityModel mirrors the 'amenities' table.
type AmenityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(50);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AmenityModel) TableName() string {
	return "amenities"
}

// ReviewModel mirrors the 'reviews' table. The composite unique index on
// (user_id, place_id) enforces one review per user per place.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Text      string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_place"`
	PlaceID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_place;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
