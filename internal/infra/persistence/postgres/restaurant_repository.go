// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"foodradar/internal/domain/entity"
	domainerrors "foodradar/internal/domain/errors"
	"foodradar/internal/domain/repository"
	"foodradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// Create persists a new restaurant.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or malformed restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// FindByID retrieves a restaurant by its unique ID.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindAll lists restaurants ordered by name.
func (repo *restaurantRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Restaurant, error) {
	query := repo.db.WithContext(ctx).Order("name ASC").Order("created_at ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var restaurantModels []*model.RestaurantModel
	if err := query.Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return toRestaurantDomains(restaurantModels), nil
}

// FindActiveWithinBound lists active restaurants inside the bounding box.
// Rows come back in insertion order so the caller's stable sort is deterministic.
func (repo *restaurantRepository) FindActiveWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Restaurant, error) {
	box := newBoundFilter(bound)

	query := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("latitude BETWEEN ? AND ?", box.minLat, box.maxLat)

	if len(box.lonRanges) > 0 {
		lonCond := repo.db.Where("longitude BETWEEN ? AND ?", box.lonRanges[0][0], box.lonRanges[0][1])
		for _, lonRange := range box.lonRanges[1:] {
			lonCond = lonCond.Or("longitude BETWEEN ? AND ?", lonRange[0], lonRange[1])
		}
		query = query.Where(lonCond)
	}

	var restaurantModels []*model.RestaurantModel
	if err := query.Order("created_at ASC").Order("id ASC").Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants within bound")
	}

	return toRestaurantDomains(restaurantModels), nil
}

// Update saves all fields of an existing restaurant.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", restaurantM.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(restaurantM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or malformed restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// Delete removes a restaurant by its ID.
func (repo *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RestaurantModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:                  data.ID,
		Name:                data.Name,
		Description:         data.Description,
		CuisineType:         data.CuisineType,
		Rating:              data.Rating,
		DeliveryTimeMinutes: data.DeliveryTimeMinutes,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		Phone:               data.Phone,
		Email:               data.Email,
		IsActive:            data.IsActive,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func toRestaurantDomains(models []*model.RestaurantModel) []*entity.Restaurant {
	restaurants := make([]*entity.Restaurant, 0, len(models))
	for _, restaurantM := range models {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:                  data.ID,
		Name:                data.Name,
		Description:         data.Description,
		CuisineType:         data.CuisineType,
		Rating:              data.Rating,
		DeliveryTimeMinutes: data.DeliveryTimeMinutes,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		Phone:               data.Phone,
		Email:               data.Email,
		IsActive:            data.IsActive,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
