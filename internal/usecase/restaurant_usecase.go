package usecase

import (
	"context"

	"foodradar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRestaurantInput represents the input for adding a restaurant to the catalog
type CreateRestaurantInput struct {
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	CuisineType         string  `json:"cuisine_type"`
	Rating              float64 `json:"rating"`
	DeliveryTimeMinutes int     `json:"delivery_time_minutes"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	Phone               string  `json:"phone"`
	Email               string  `json:"email"`
	IsActive            *bool   `json:"is_active,omitempty"`
}

// UpdateRestaurantInput represents a partial update; nil fields are left unchanged
type UpdateRestaurantInput struct {
	Name                *string  `json:"name,omitempty"`
	Description         *string  `json:"description,omitempty"`
	CuisineType         *string  `json:"cuisine_type,omitempty"`
	Rating              *float64 `json:"rating,omitempty"`
	DeliveryTimeMinutes *int     `json:"delivery_time_minutes,omitempty"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	Phone               *string  `json:"phone,omitempty"`
	Email               *string  `json:"email,omitempty"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

// RestaurantUsecase defines the interface for restaurant catalog use cases
type RestaurantUsecase interface {
	CreateRestaurant(ctx context.Context, input *CreateRestaurantInput) (*entity.Restaurant, error)
	GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	ListRestaurants(ctx context.Context, activeOnly bool) ([]*entity.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id uuid.UUID, input *UpdateRestaurantInput) (*entity.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id uuid.UUID) error
}
