package impl

import (
	"context"
	"testing"

	"foodradar/config"
	"foodradar/internal/domain/entity"
	domainerrors "foodradar/internal/domain/errors"
	"foodradar/internal/domain/geo"
	mockRepo "foodradar/internal/mocks/repository"
	"foodradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	newYork   = geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	nearbyX   = geo.Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	queensY   = geo.Coordinate{Latitude: 40.7282, Longitude: -73.7949}
	empireSt  = geo.Coordinate{Latitude: 40.7484, Longitude: -73.9857}
	libertyIs = geo.Coordinate{Latitude: 40.6892, Longitude: -74.0445}
	london    = geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
)

type proximityServiceFixtures struct {
	service        usecase.ProximityUsecase
	restaurantRepo *mockRepo.MockRestaurantRepository
}

func createTestProximityService(t *testing.T, proximity *config.ProximityConfig) proximityServiceFixtures {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	service := NewProximityService(restaurantRepo, &config.Config{Proximity: proximity})

	return proximityServiceFixtures{
		service:        service,
		restaurantRepo: restaurantRepo,
	}
}

func restaurantAt(name string, c geo.Coordinate) *entity.Restaurant {
	return &entity.Restaurant{
		ID:        uuid.New(),
		Name:      name,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		IsActive:  true,
	}
}

func TestProximityService_Measure(t *testing.T) {
	fx := createTestProximityService(t, &config.ProximityConfig{Workers: 2})

	targets := []geo.Coordinate{queensY, newYork, london, empireSt, libertyIs}

	measurements, err := fx.service.Measure(context.Background(), newYork, targets)
	require.NoError(t, err)
	require.Len(t, measurements, len(targets))

	for i, m := range measurements {
		assert.Equal(t, targets[i], m.Target, "measurement %d out of order", i)
		assert.InDelta(t, geo.Distance(newYork, targets[i]), m.DistanceKm, 1e-12)
	}

	assert.Equal(t, "6.3km", measurements[0].Display)
	assert.Equal(t, "0m", measurements[1].Display)
	assert.Equal(t, "5570.2km", measurements[2].Display)
}

func TestProximityService_Measure_Empty(t *testing.T) {
	fx := createTestProximityService(t, nil)

	measurements, err := fx.service.Measure(context.Background(), newYork, nil)
	require.NoError(t, err)
	assert.NotNil(t, measurements)
	assert.Empty(t, measurements)
}

func TestProximityService_Measure_InvalidCoordinate(t *testing.T) {
	fx := createTestProximityService(t, nil)

	t.Run("reference", func(t *testing.T) {
		_, err := fx.service.Measure(context.Background(), geo.Coordinate{Latitude: 91}, []geo.Coordinate{newYork})
		assert.True(t, errors.Is(err, geo.ErrInvalidCoordinate))
	})

	t.Run("first bad target is reported", func(t *testing.T) {
		targets := []geo.Coordinate{newYork, {Longitude: 181}, {Latitude: -91}}

		_, err := fx.service.Measure(context.Background(), newYork, targets)
		require.Error(t, err)
		assert.True(t, errors.Is(err, geo.ErrInvalidCoordinate))
		assert.Contains(t, err.Error(), "target 1")
	})
}

func TestProximityService_Measure_Canceled(t *testing.T) {
	fx := createTestProximityService(t, &config.ProximityConfig{Workers: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.service.Measure(ctx, newYork, []geo.Coordinate{queensY, london})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestProximityService_Nearby(t *testing.T) {
	fx := createTestProximityService(t, nil)
	ctx := context.Background()

	x := restaurantAt("X", nearbyX)
	y := restaurantAt("Y", queensY)
	empire := restaurantAt("Empire", empireSt)
	liberty := restaurantAt("Liberty", libertyIs)

	fx.restaurantRepo.EXPECT().
		FindActiveWithinBound(ctx, mock.MatchedBy(func(b orb.Bound) bool {
			return b.Contains(newYork.Point())
		})).
		Return([]*entity.Restaurant{y, empire, x, liberty}, nil).
		Once()

	result, err := fx.service.Nearby(ctx, &usecase.NearbyInput{Reference: newYork})
	require.NoError(t, err)

	assert.Equal(t, config.DefaultRadiusKm, result.RadiusKm)
	require.Len(t, result.Restaurants, 3)
	assert.Same(t, x, result.Restaurants[0].Restaurant)
	assert.Same(t, liberty, result.Restaurants[1].Restaurant)
	assert.Same(t, empire, result.Restaurants[2].Restaurant)
	assert.Equal(t, "0m", result.Restaurants[0].Display)
	assert.Equal(t, "4.2km", result.Restaurants[1].Display)
	assert.Equal(t, "4.3km", result.Restaurants[2].Display)
}

func TestProximityService_Nearby_PreFilterBound(t *testing.T) {
	fx := createTestProximityService(t, &config.ProximityConfig{PreFilterMultiplier: 2})
	ctx := context.Background()

	// A 10 km box edge sits about 0.09 degrees of latitude north of the reference.
	fx.restaurantRepo.EXPECT().
		FindActiveWithinBound(ctx, mock.MatchedBy(func(b orb.Bound) bool {
			height := b.Max.Lat() - b.Min.Lat()
			return height > 0.17 && height < 0.19
		})).
		Return([]*entity.Restaurant{}, nil).
		Once()

	result, err := fx.service.Nearby(ctx, &usecase.NearbyInput{Reference: newYork, RadiusKm: 5})
	require.NoError(t, err)
	assert.Empty(t, result.Restaurants)
}

func TestProximityService_Nearby_PointOnRadiusWithTightBound(t *testing.T) {
	fx := createTestProximityService(t, &config.ProximityConfig{PreFilterMultiplier: 1})
	ctx := context.Background()

	center := geo.Coordinate{Latitude: 40, Longitude: 0}
	north := restaurantAt("North", geo.Coordinate{Latitude: 40.0449, Longitude: 0})
	radiusKm := geo.Distance(center, north.Coordinate())

	fx.restaurantRepo.EXPECT().
		FindActiveWithinBound(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, b orb.Bound) ([]*entity.Restaurant, error) {
			if !b.Contains(north.Coordinate().Point()) {
				return []*entity.Restaurant{}, nil
			}

			return []*entity.Restaurant{north}, nil
		}).
		Once()

	result, err := fx.service.Nearby(ctx, &usecase.NearbyInput{Reference: center, RadiusKm: radiusKm})
	require.NoError(t, err)
	require.Len(t, result.Restaurants, 1)
	assert.Same(t, north, result.Restaurants[0].Restaurant)
}

func TestProximityService_Nearby_Limit(t *testing.T) {
	fx := createTestProximityService(t, &config.ProximityConfig{MaxResults: 2})
	ctx := context.Background()

	candidates := []*entity.Restaurant{
		restaurantAt("Empire", empireSt),
		restaurantAt("X", nearbyX),
		restaurantAt("Liberty", libertyIs),
	}

	fx.restaurantRepo.EXPECT().
		FindActiveWithinBound(ctx, mock.Anything).
		Return(candidates, nil)

	t.Run("explicit limit", func(t *testing.T) {
		result, err := fx.service.Nearby(ctx, &usecase.NearbyInput{Reference: newYork, Limit: 1})
		require.NoError(t, err)
		require.Len(t, result.Restaurants, 1)
		assert.Equal(t, "X", result.Restaurants[0].Restaurant.Name)
	})

	t.Run("capped at max results", func(t *testing.T) {
		result, err := fx.service.Nearby(ctx, &usecase.NearbyInput{Reference: newYork, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, result.Restaurants, 2)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := fx.service.Nearby(ctx, &usecase.NearbyInput{Reference: newYork, Limit: -1})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestProximityService_Nearby_InvalidInput(t *testing.T) {
	fx := createTestProximityService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   *usecase.NearbyInput
		wantErr error
	}{
		{name: "nil input", input: nil, wantErr: domainerrors.ErrValidationFailed},
		{name: "negative radius", input: &usecase.NearbyInput{Reference: newYork, RadiusKm: -1}, wantErr: geo.ErrInvalidRadius},
		{name: "radius above max", input: &usecase.NearbyInput{Reference: newYork, RadiusKm: 51}, wantErr: geo.ErrInvalidRadius},
		{name: "bad reference", input: &usecase.NearbyInput{Reference: geo.Coordinate{Latitude: 100}}, wantErr: geo.ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Nearby(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestProximityService_Nearby_RepositoryError(t *testing.T) {
	fx := createTestProximityService(t, nil)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	fx.restaurantRepo.EXPECT().
		FindActiveWithinBound(ctx, mock.Anything).
		Return(nil, dbErr)

	_, err := fx.service.Nearby(ctx, &usecase.NearbyInput{Reference: newYork})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
}

func TestProximityService_RadiusOptions(t *testing.T) {
	fx := createTestProximityService(t, nil)

	options := fx.service.RadiusOptions()
	assert.Equal(t, []float64{1, 3, 5, 10, 20}, options.OptionsKm)
	assert.Equal(t, 5.0, options.DefaultKm)
	assert.Equal(t, 50.0, options.MaxKm)

	options.OptionsKm[0] = 99
	assert.Equal(t, 1.0, fx.service.RadiusOptions().OptionsKm[0])
}
