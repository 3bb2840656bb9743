package usecase

import (
	"context"

	"foodradar/internal/domain/entity"
	"foodradar/internal/domain/geo"
)

// Measurement is the distance from a reference to one target
type Measurement struct {
	Target     geo.Coordinate `json:"target"`
	DistanceKm float64        `json:"distance_km"`
	Display    string         `json:"display"`
}

// NearbyInput represents a "restaurants near me" query.
// A zero RadiusKm selects the configured default and a zero Limit the configured cap.
type NearbyInput struct {
	Reference geo.Coordinate
	RadiusKm  float64
	Limit     int
}

// RestaurantDistance is a restaurant annotated with its distance from the reference
type RestaurantDistance struct {
	Restaurant *entity.Restaurant `json:"restaurant"`
	DistanceKm float64            `json:"distance_km"`
	Display    string             `json:"display"`
}

// NearbyResult carries the radius actually applied alongside the matches
type NearbyResult struct {
	RadiusKm    float64               `json:"radius_km"`
	Restaurants []*RestaurantDistance `json:"restaurants"`
}

// RadiusOptions lists the selectable search radii
type RadiusOptions struct {
	OptionsKm []float64 `json:"options_km"`
	DefaultKm float64   `json:"default_km"`
	MaxKm     float64   `json:"max_km"`
}

// ProximityUsecase defines distance measurement and radius search use cases
type ProximityUsecase interface {
	// Measure computes the distance from reference to every target, preserving target order.
	Measure(ctx context.Context, reference geo.Coordinate, targets []geo.Coordinate) ([]Measurement, error)

	// Nearby returns active restaurants within the radius, nearest first.
	Nearby(ctx context.Context, input *NearbyInput) (*NearbyResult, error)

	// RadiusOptions returns the configured radius chips.
	RadiusOptions() RadiusOptions
}
