// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodradar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProximityHandler  *handler.ProximityHandler
	RestaurantHandler *handler.RestaurantHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	proximityHandler  *handler.ProximityHandler
	restaurantHandler *handler.RestaurantHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		proximityHandler:  params.ProximityHandler,
		restaurantHandler: params.RestaurantHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Stateless geo operations
	proximityGroup := apiV1.Group("/proximity")
	{
		proximityGroup.POST("/distance", r.proximityHandler.Distance)
		proximityGroup.POST("/format", r.proximityHandler.Format)
		proximityGroup.POST("/filter", r.proximityHandler.Filter)
		proximityGroup.POST("/sort", r.proximityHandler.Sort)
		proximityGroup.POST("/measure", r.proximityHandler.Measure)
		proximityGroup.GET("/radius-options", r.proximityHandler.RadiusOptions)
	}

	// Restaurant catalog and nearby search
	restaurantsGroup := apiV1.Group("/restaurants")
	{
		restaurantsGroup.GET("/nearby", r.restaurantHandler.Nearby)
		restaurantsGroup.POST("", r.restaurantHandler.CreateRestaurant)
		restaurantsGroup.GET("", r.restaurantHandler.ListRestaurants)
		restaurantsGroup.GET("/:id", r.restaurantHandler.GetRestaurant)
		restaurantsGroup.PUT("/:id", r.restaurantHandler.UpdateRestaurant)
		restaurantsGroup.DELETE("/:id", r.restaurantHandler.DeleteRestaurant)
	}
}
