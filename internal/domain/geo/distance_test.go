package geo

import (
	"math"
	"testing"

	"foodradar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	newYork      = Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	queens       = Coordinate{Latitude: 40.730610, Longitude: -73.935242}
	london       = Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	empire       = Coordinate{Latitude: 40.7484, Longitude: -73.9857}
	liberty      = Coordinate{Latitude: 40.6892, Longitude: -74.0445}
	taipei101    = Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	northPole    = Coordinate{Latitude: 90, Longitude: 0}
	southPole    = Coordinate{Latitude: -90, Longitude: 0}
	antimerE     = Coordinate{Latitude: 0, Longitude: 180}
	antimerW     = Coordinate{Latitude: 0, Longitude: -180}
	samplePoints = []Coordinate{newYork, queens, london, empire, liberty, taipei101, northPole, southPole}
)

// haversineReference is an independent rendition of the formula using the
// hav(θ) = (1 - cos θ)/2 identity.
func haversineReference(a, b Coordinate) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	hav := func(x float64) float64 { return (1 - math.Cos(x)) / 2 }

	h := hav(rad(b.Latitude-a.Latitude)) + math.Cos(rad(a.Latitude))*math.Cos(rad(b.Latitude))*hav(rad(b.Longitude-a.Longitude))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinate
		want float64
	}{
		{name: "new york to queens", a: newYork, b: queens, want: 6.283257835},
		{name: "new york to london", a: newYork, b: london, want: 5570.222179},
		{name: "new york to empire state", a: newYork, b: empire, want: 4.312296892},
		{name: "new york to liberty island", a: newYork, b: liberty, want: 4.173712717},
		{name: "pole to pole", a: northPole, b: southPole, want: math.Pi * EarthRadiusKm},
		{name: "across the antimeridian", a: antimerE, b: antimerW, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 1e-6)
			assert.InDelta(t, haversineReference(tt.a, tt.b), got, 1e-6)
		})
	}
}

func TestDistance_Properties(t *testing.T) {
	for _, a := range samplePoints {
		assert.Zero(t, Distance(a, a), "distance to self %v", a)

		for _, b := range samplePoints {
			ab := Distance(a, b)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.Equal(t, ab, Distance(b, a), "symmetry %v %v", a, b)

			for _, c := range samplePoints {
				assert.LessOrEqual(t, Distance(a, c), ab+Distance(b, c)+1e-9, "triangle %v %v %v", a, b, c)
			}
		}
	}
}

func TestCheckedDistance(t *testing.T) {
	got, err := CheckedDistance(newYork, queens)
	require.NoError(t, err)
	assert.Equal(t, Distance(newYork, queens), got)

	invalid := []Coordinate{
		{Latitude: 90.0001, Longitude: 0},
		{Latitude: -95, Longitude: 0},
		{Latitude: 0, Longitude: 180.5},
		{Latitude: 0, Longitude: -195},
		{Latitude: math.NaN(), Longitude: 0},
		{Latitude: 0, Longitude: math.Inf(1)},
		{Latitude: math.Inf(-1), Longitude: 0},
	}

	for _, c := range invalid {
		_, err := CheckedDistance(newYork, c)
		assert.True(t, errors.Is(err, ErrInvalidCoordinate), "target %v", c)

		_, err = CheckedDistance(c, newYork)
		assert.True(t, errors.Is(err, ErrInvalidCoordinate), "source %v", c)
	}
}

func TestNewCoordinate(t *testing.T) {
	c, err := NewCoordinate(-90, 180)
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Latitude: -90, Longitude: 180}, c)

	_, err = NewCoordinate(91, 0)
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))
}

func TestCoordinate_PointRoundTrip(t *testing.T) {
	p := newYork.Point()
	assert.Equal(t, newYork.Longitude, p.Lon())
	assert.Equal(t, newYork.Latitude, p.Lat())
	assert.Equal(t, newYork, FromPoint(p))
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km   float64
		want string
	}{
		{km: 0, want: "0m"},
		{km: 0.342, want: "342m"},
		{km: 0.0004, want: "0m"},
		{km: 0.0005, want: "1m"},
		{km: 0.9994, want: "999m"},
		{km: 1.0, want: "1.0km"},
		{km: 3.14, want: "3.1km"},
		{km: 6.283257835, want: "6.3km"},
		{km: 10.5, want: "10.5km"},
		{km: 5570.222179, want: "5570.2km"},
	}

	for _, tt := range tests {
		got, err := FormatDistance(tt.km)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "FormatDistance(%v)", tt.km)
	}
}

func TestFormatDistance_Invalid(t *testing.T) {
	for _, km := range []float64{-0.001, -10, math.NaN(), math.Inf(1), math.Inf(-1)} {
		got, err := FormatDistance(km)
		assert.Empty(t, got)
		assert.True(t, errors.Is(err, ErrInvalidDistance), "FormatDistance(%v)", km)
	}
}
