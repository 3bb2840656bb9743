package handler

import (
	"net/http"

	"foodradar/internal/delivery/api/response"
	domainerrors "foodradar/internal/domain/errors"
	"foodradar/internal/domain/geo"
	"foodradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	ProximityUC  usecase.ProximityUsecase
}

// RestaurantHandler holds dependencies for restaurant catalog and nearby search handlers
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	proximityUC  usecase.ProximityUsecase
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		proximityUC:  params.ProximityUC,
	}
}

// CreateRestaurantRequest represents the request body for adding a restaurant.
// Coordinate ranges are checked by the use case so they report INVALID_COORDINATE.
type CreateRestaurantRequest struct {
	Name                string   `json:"name" validate:"required,max=255"`
	Description         string   `json:"description"`
	CuisineType         string   `json:"cuisine_type" validate:"max=100"`
	Rating              float64  `json:"rating" validate:"gte=0,lte=5"`
	DeliveryTimeMinutes int      `json:"delivery_time_minutes" validate:"gte=0"`
	Latitude            *float64 `json:"latitude" validate:"required"`
	Longitude           *float64 `json:"longitude" validate:"required"`
	Phone               string   `json:"phone" validate:"max=50"`
	Email               string   `json:"email" validate:"omitempty,email,max=255"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

// UpdateRestaurantRequest represents the request body for a partial restaurant update
type UpdateRestaurantRequest struct {
	Name                *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description         *string  `json:"description,omitempty"`
	CuisineType         *string  `json:"cuisine_type,omitempty" validate:"omitempty,max=100"`
	Rating              *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	DeliveryTimeMinutes *int     `json:"delivery_time_minutes,omitempty" validate:"omitempty,gte=0"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	Phone               *string  `json:"phone,omitempty" validate:"omitempty,max=50"`
	Email               *string  `json:"email,omitempty" validate:"omitempty,email,max=255"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

// CreateRestaurant handles adding a restaurant to the catalog
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var req CreateRestaurantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.CreateRestaurantInput{
		Name:                req.Name,
		Description:         req.Description,
		CuisineType:         req.CuisineType,
		Rating:              req.Rating,
		DeliveryTimeMinutes: req.DeliveryTimeMinutes,
		Latitude:            *req.Latitude,
		Longitude:           *req.Longitude,
		Phone:               req.Phone,
		Email:               req.Email,
		IsActive:            req.IsActive,
	}

	restaurant, err := h.restaurantUC.CreateRestaurant(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, restaurant)
}

// GetRestaurant handles retrieving a single restaurant
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id, err := parseRestaurantID(c)
	if err != nil {
		return err
	}

	restaurant, err := h.restaurantUC.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant)
}

// ListRestaurants handles listing the catalog; ?active=true hides inactive restaurants
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	var activeOnly bool
	if err := echo.QueryParamsBinder(c).Bool("active", &activeOnly).BindError(); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("active must be a boolean")
	}

	restaurants, err := h.restaurantUC.ListRestaurants(c.Request().Context(), activeOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants)
}

// UpdateRestaurant handles a partial update of a restaurant
func (h *RestaurantHandler) UpdateRestaurant(c echo.Context) error {
	id, err := parseRestaurantID(c)
	if err != nil {
		return err
	}

	var req UpdateRestaurantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateRestaurantInput{
		Name:                req.Name,
		Description:         req.Description,
		CuisineType:         req.CuisineType,
		Rating:              req.Rating,
		DeliveryTimeMinutes: req.DeliveryTimeMinutes,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		Phone:               req.Phone,
		Email:               req.Email,
		IsActive:            req.IsActive,
	}

	restaurant, err := h.restaurantUC.UpdateRestaurant(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant)
}

// DeleteRestaurant handles removing a restaurant
func (h *RestaurantHandler) DeleteRestaurant(c echo.Context) error {
	id, err := parseRestaurantID(c)
	if err != nil {
		return err
	}

	if err := h.restaurantUC.DeleteRestaurant(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Nearby handles GET /restaurants/nearby?lat=&lng=&radius_km=&limit=
func (h *RestaurantHandler) Nearby(c echo.Context) error {
	var (
		lat, lng, radiusKm float64
		limit              int
	)

	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		Float64("radius_km", &radiusKm).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("lat and lng are required numbers; radius_km and limit must be numeric")
	}

	result, err := h.proximityUC.Nearby(c.Request().Context(), &usecase.NearbyInput{
		Reference: geo.Coordinate{Latitude: lat, Longitude: lng},
		RadiusKm:  radiusKm,
		Limit:     limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func parseRestaurantID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails("restaurant id must be a UUID")
	}

	return id, nil
}
