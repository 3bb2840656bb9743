// Package geo provides great-circle distance, display formatting and
// radius/distance based filtering and ordering of located entities.
//
// Every function in this package is pure: inputs are never mutated and
// results are freshly allocated, so they are safe for concurrent use.
package geo

import (
	"math"

	"foodradar/internal/errors"

	"github.com/paulmach/orb"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// Coordinate is a geographic position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Located is implemented by anything that carries a coordinate.
type Located interface {
	Coordinate() Coordinate
}

// NewCoordinate builds a validated coordinate.
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	c := Coordinate{Latitude: latitude, Longitude: longitude}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// Coordinate lets a bare Coordinate be used wherever a Located is expected.
func (c Coordinate) Coordinate() Coordinate {
	return c
}

// Validate reports ErrInvalidCoordinate when either component is non-finite
// or outside its range.
func (c Coordinate) Validate() error {
	if !isFinite(c.Latitude) || c.Latitude < minLatitude || c.Latitude > maxLatitude {
		return errors.Wrapf(ErrInvalidCoordinate, "latitude %v out of range [%v, %v]", c.Latitude, minLatitude, maxLatitude)
	}

	if !isFinite(c.Longitude) || c.Longitude < minLongitude || c.Longitude > maxLongitude {
		return errors.Wrapf(ErrInvalidCoordinate, "longitude %v out of range [%v, %v]", c.Longitude, minLongitude, maxLongitude)
	}

	return nil
}

// Point converts to an orb.Point, which is ordered [lon, lat].
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// FromPoint converts an orb.Point back to a Coordinate.
func FromPoint(p orb.Point) Coordinate {
	return Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
