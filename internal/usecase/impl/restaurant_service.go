package impl

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"foodradar/internal/domain/entity"
	domainerrors "foodradar/internal/domain/errors"
	"foodradar/internal/domain/repository"
	"foodradar/internal/errors"
	"foodradar/internal/usecase"

	"github.com/google/uuid"
)

const maxRating = 5.0

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
}

// NewRestaurantService creates a new restaurant catalog service instance
func NewRestaurantService(restaurantRepo repository.RestaurantRepository) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
	}
}

// CreateRestaurant validates and stores a new restaurant
func (s *restaurantService) CreateRestaurant(ctx context.Context, input *usecase.CreateRestaurantInput) (*entity.Restaurant, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("restaurant input is required")
	}

	now := time.Now()
	restaurant := &entity.Restaurant{
		ID:                  uuid.New(),
		Name:                strings.TrimSpace(input.Name),
		Description:         input.Description,
		CuisineType:         input.CuisineType,
		Rating:              input.Rating,
		DeliveryTimeMinutes: input.DeliveryTimeMinutes,
		Latitude:            input.Latitude,
		Longitude:           input.Longitude,
		Phone:               input.Phone,
		Email:               input.Email,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if input.IsActive != nil {
		restaurant.IsActive = *input.IsActive
	}

	if err := validateRestaurant(restaurant); err != nil {
		return nil, err
	}

	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	return restaurant, nil
}

// GetRestaurant retrieves a restaurant by ID
func (s *restaurantService) GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, fmt.Errorf("failed to find restaurant by ID: %w", err)
	}

	return restaurant, nil
}

// ListRestaurants lists the catalog, optionally hiding inactive restaurants
func (s *restaurantService) ListRestaurants(ctx context.Context, activeOnly bool) ([]*entity.Restaurant, error) {
	restaurants, err := s.restaurantRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	return restaurants, nil
}

// UpdateRestaurant applies a partial update to an existing restaurant
func (s *restaurantService) UpdateRestaurant(ctx context.Context, id uuid.UUID, input *usecase.UpdateRestaurantInput) (*entity.Restaurant, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("restaurant input is required")
	}

	restaurant, err := s.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	applyRestaurantUpdates(restaurant, input)
	restaurant.UpdatedAt = time.Now()

	if err := validateRestaurant(restaurant); err != nil {
		return nil, err
	}

	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, fmt.Errorf("failed to update restaurant: %w", err)
	}

	return restaurant, nil
}

// DeleteRestaurant removes a restaurant from the catalog
func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uuid.UUID) error {
	if err := s.restaurantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrRestaurantNotFound
		}

		return fmt.Errorf("failed to delete restaurant: %w", err)
	}

	return nil
}

func applyRestaurantUpdates(restaurant *entity.Restaurant, input *usecase.UpdateRestaurantInput) {
	if input.Name != nil {
		restaurant.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}
	if input.CuisineType != nil {
		restaurant.CuisineType = *input.CuisineType
	}
	if input.Rating != nil {
		restaurant.Rating = *input.Rating
	}
	if input.DeliveryTimeMinutes != nil {
		restaurant.DeliveryTimeMinutes = *input.DeliveryTimeMinutes
	}
	if input.Latitude != nil {
		restaurant.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		restaurant.Longitude = *input.Longitude
	}
	if input.Phone != nil {
		restaurant.Phone = *input.Phone
	}
	if input.Email != nil {
		restaurant.Email = *input.Email
	}
	if input.IsActive != nil {
		restaurant.IsActive = *input.IsActive
	}
}

// validateRestaurant enforces the catalog rules the database cannot express.
// Coordinate problems keep their geo error so they surface as INVALID_COORDINATE.
func validateRestaurant(restaurant *entity.Restaurant) error {
	if restaurant.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if math.IsNaN(restaurant.Rating) || restaurant.Rating < 0 || restaurant.Rating > maxRating {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("rating must be between 0 and %.0f", maxRating))
	}
	if restaurant.DeliveryTimeMinutes < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("delivery time must not be negative")
	}

	if err := restaurant.Coordinate().Validate(); err != nil {
		return errors.WithMessage(err, "restaurant location")
	}

	return nil
}
