package geo

import (
	"fmt"
	"math"

	"foodradar/internal/errors"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

const (
	degToRad   = math.Pi / 180
	metersInKm = 1000.0
)

// Distance returns the haversine great-circle distance between a and b in
// kilometers. Inputs are not validated; use CheckedDistance for untrusted data.
func Distance(a, b Coordinate) float64 {
	lat1 := a.Latitude * degToRad
	lat2 := b.Latitude * degToRad
	deltaLat := (b.Latitude - a.Latitude) * degToRad
	deltaLng := (b.Longitude - a.Longitude) * degToRad

	sinLat := math.Sin(deltaLat / 2)
	sinLng := math.Sin(deltaLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// CheckedDistance validates both coordinates before computing Distance.
func CheckedDistance(a, b Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	return Distance(a, b), nil
}

// FormatDistance renders a distance for display: whole meters below one
// kilometer ("342m"), kilometers with one decimal otherwise ("3.1km").
func FormatDistance(km float64) (string, error) {
	if !isFinite(km) || km < 0 {
		return "", errors.Wrapf(ErrInvalidDistance, "distance %v", km)
	}

	if km < 1 {
		return fmt.Sprintf("%dm", int64(math.Round(km*metersInKm))), nil
	}

	return fmt.Sprintf("%.1fkm", km), nil
}
