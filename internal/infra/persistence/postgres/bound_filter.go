package postgres

import (
	"math"

	"github.com/paulmach/orb"
)

// boundFilter is an orb.Bound translated into SQL-friendly ranges.
// A bound whose min longitude exceeds its max wraps the antimeridian and
// becomes two longitude ranges. An empty lonRanges means every longitude.
type boundFilter struct {
	minLat    float64
	maxLat    float64
	lonRanges [][2]float64
}

func newBoundFilter(bound orb.Bound) boundFilter {
	minLat, maxLat := bound.Min.Lat(), bound.Max.Lat()
	if !isFiniteNumber(minLat) || minLat < -90 {
		minLat = -90
	}
	if !isFiniteNumber(maxLat) || maxLat > 90 {
		maxLat = 90
	}

	box := boundFilter{minLat: minLat, maxLat: maxLat}

	minLon, maxLon := bound.Min.Lon(), bound.Max.Lon()
	if !isFiniteNumber(minLon) || !isFiniteNumber(maxLon) {
		return box
	}

	minLon = math.Max(minLon, -180)
	maxLon = math.Min(maxLon, 180)
	if minLon <= -180 && maxLon >= 180 {
		return box
	}

	if minLon > maxLon {
		box.lonRanges = [][2]float64{{minLon, 180}, {-180, maxLon}}

		return box
	}

	box.lonRanges = [][2]float64{{minLon, maxLon}}

	return box
}

func isFiniteNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
