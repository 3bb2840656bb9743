// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"foodradar/internal/domain/geo"

	"github.com/google/uuid"
)

var _ geo.Located = (*Restaurant)(nil)

// Restaurant is a food vendor with a fixed location.
type Restaurant struct {
	ID                  uuid.UUID `json:"id"`                    // The Global Unique Identifier (GUID) for the restaurant.
	Name                string    `json:"name"`                  // Display name.
	Description         string    `json:"description"`           // Free-form description shown on the card.
	CuisineType         string    `json:"cuisine_type"`          // e.g. "ramen", "tacos".
	Rating              float64   `json:"rating"`                // Average rating in [0, 5].
	DeliveryTimeMinutes int       `json:"delivery_time_minutes"` // Typical delivery time.
	Latitude            float64   `json:"latitude"`              // The geographic latitude.
	Longitude           float64   `json:"longitude"`             // The geographic longitude.
	Phone               string    `json:"phone"`                 // Contact phone, optional.
	Email               string    `json:"email"`                 // Contact email, optional.
	IsActive            bool      `json:"is_active"`             // Inactive restaurants are hidden from nearby searches.
	CreatedAt           time.Time `json:"created_at"`            // Timestamp of when this restaurant was created.
	UpdatedAt           time.Time `json:"updated_at"`            // Timestamp of the last modification.
}

// Coordinate implements geo.Located.
func (r *Restaurant) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}
