// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"foodradar/internal/domain/entity"
	"foodradar/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for restaurant persistence.
var (
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// RestaurantRepository defines the interface for restaurant-related database operations.
type RestaurantRepository interface {
	// Create persists a new restaurant.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// FindByID retrieves a restaurant by its unique ID.
	// Returns ErrRestaurantNotFound if it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindAll lists restaurants ordered by name, optionally only active ones.
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Restaurant, error)

	// FindActiveWithinBound lists active restaurants whose coordinate lies in the
	// lon/lat box. It is a coarse pre-filter; callers apply the exact radius.
	FindActiveWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Restaurant, error)

	// Update saves all fields of an existing restaurant.
	Update(ctx context.Context, restaurant *entity.Restaurant) error

	// Delete removes a restaurant by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
