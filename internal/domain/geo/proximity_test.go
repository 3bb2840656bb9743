package geo

import (
	"math"
	"testing"

	"foodradar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stall struct {
	name string
	at   Coordinate
}

func (s stall) Coordinate() Coordinate {
	return s.at
}

func names(stalls []stall) []string {
	out := make([]string, len(stalls))
	for i, s := range stalls {
		out[i] = s.name
	}

	return out
}

func TestFilterByRadius_NewYorkScenario(t *testing.T) {
	x := stall{name: "X", at: newYork}
	y := stall{name: "Y", at: queens}

	tests := []struct {
		radiusKm float64
		want     []string
	}{
		{radiusKm: 5, want: []string{"X"}},
		{radiusKm: 15, want: []string{"X", "Y"}},
		{radiusKm: math.SmallestNonzeroFloat64, want: []string{"X"}},
	}

	for _, tt := range tests {
		got, err := FilterByRadius([]stall{x, y}, newYork, tt.radiusKm)
		require.NoError(t, err)
		assert.Equal(t, tt.want, names(got), "radius %v", tt.radiusKm)
	}

	display, err := FormatDistance(Distance(newYork, x.at))
	require.NoError(t, err)
	assert.Equal(t, "0m", display)

	display, err = FormatDistance(Distance(newYork, y.at))
	require.NoError(t, err)
	assert.Equal(t, "6.3km", display)
}

func TestFilterByRadius_InclusiveBoundary(t *testing.T) {
	boundary := Distance(newYork, empire)
	input := []stall{{name: "empire", at: empire}, {name: "queens", at: queens}}

	got, err := FilterByRadius(input, newYork, boundary)
	require.NoError(t, err)
	assert.Equal(t, []string{"empire"}, names(got))

	got, err = FilterByRadius(input, newYork, math.Nextafter(boundary, 0))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterByRadius_PreservesOrderAndInput(t *testing.T) {
	input := []stall{
		{name: "queens", at: queens},
		{name: "london", at: london},
		{name: "liberty", at: liberty},
		{name: "empire", at: empire},
	}
	snapshot := append([]stall(nil), input...)

	got, err := FilterByRadius(input, newYork, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"queens", "liberty", "empire"}, names(got))
	assert.Equal(t, snapshot, input)
}

func TestFilterByRadius_Empty(t *testing.T) {
	got, err := FilterByRadius([]stall{}, newYork, 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = FilterByRadius[stall](nil, newYork, 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterByRadius_InvalidRadius(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FilterByRadius([]stall{{name: "X", at: newYork}}, newYork, r)
		assert.True(t, errors.Is(err, ErrInvalidRadius), "radius %v", r)
	}
}

func TestFilterByRadius_InvalidCoordinate(t *testing.T) {
	_, err := FilterByRadius([]stall{{name: "bad", at: Coordinate{Latitude: 120}}}, newYork, 5)
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))

	_, err = FilterByRadius([]stall{{name: "X", at: newYork}}, Coordinate{Longitude: math.NaN()}, 5)
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))
}

func TestFilterByRadius_BareCoordinates(t *testing.T) {
	got, err := FilterByRadius(samplePoints, newYork, 10)
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{newYork, queens, empire, liberty}, got)
}

func TestSortByDistance(t *testing.T) {
	input := []stall{
		{name: "london", at: london},
		{name: "queens", at: queens},
		{name: "here", at: newYork},
		{name: "liberty", at: liberty},
		{name: "empire", at: empire},
	}
	snapshot := append([]stall(nil), input...)

	got, err := SortByDistance(input, newYork)
	require.NoError(t, err)
	assert.Equal(t, []string{"here", "liberty", "empire", "queens", "london"}, names(got))
	assert.Equal(t, snapshot, input)

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, Distance(newYork, got[i-1].at), Distance(newYork, got[i].at))
	}
}

func TestSortByDistance_StableTies(t *testing.T) {
	input := []stall{
		{name: "first", at: queens},
		{name: "near", at: liberty},
		{name: "second", at: queens},
		{name: "third", at: queens},
	}

	got, err := SortByDistance(input, newYork)
	require.NoError(t, err)
	assert.Equal(t, []string{"near", "first", "second", "third"}, names(got))
}

func TestSortByDistance_Idempotent(t *testing.T) {
	input := []stall{
		{name: "a", at: empire},
		{name: "b", at: liberty},
		{name: "c", at: queens},
		{name: "d", at: empire},
	}

	once, err := SortByDistance(input, newYork)
	require.NoError(t, err)

	twice, err := SortByDistance(once, newYork)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestSortByDistance_InvalidCoordinate(t *testing.T) {
	input := []stall{{name: "ok", at: newYork}, {name: "bad", at: Coordinate{Latitude: 0, Longitude: 200}}}

	got, err := SortByDistance(input, newYork)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))
	assert.Contains(t, err.Error(), "entity 1")
}

func TestRankByDistance(t *testing.T) {
	ranked, err := RankByDistance([]stall{{name: "queens", at: queens}, {name: "here", at: newYork}}, newYork)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "here", ranked[0].Entity.name)
	assert.Zero(t, ranked[0].DistanceKm)
	assert.Equal(t, "queens", ranked[1].Entity.name)
	assert.InDelta(t, 6.283257835, ranked[1].DistanceKm, 1e-6)
}
