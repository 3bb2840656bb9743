package impl

import (
	"context"
	"fmt"

	"foodradar/config"
	domainerrors "foodradar/internal/domain/errors"
	"foodradar/internal/domain/geo"
	"foodradar/internal/domain/repository"
	"foodradar/internal/errors"
	"foodradar/internal/usecase"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"golang.org/x/sync/errgroup"
)

const metersPerKm = 1000.0

// orb builds bounds on a 6378137 m sphere. Scaling by the radius ratio keeps
// the box angle equal to the angle geo.Distance measures, and boundSlack
// absorbs the float error at the edge.
const (
	orbRadiusRatio = orb.EarthRadius / (geo.EarthRadiusKm * metersPerKm)
	boundSlack     = 1e-9
)

type proximityService struct {
	restaurantRepo repository.RestaurantRepository
	config         *config.ProximityConfig
}

// NewProximityService creates a new proximity service instance
func NewProximityService(restaurantRepo repository.RestaurantRepository, cfg *config.Config) usecase.ProximityUsecase {
	return &proximityService{
		restaurantRepo: restaurantRepo,
		config:         cfg.Proximity.WithDefaults(),
	}
}

// Measure computes reference-to-target distances on a bounded worker group.
// Every coordinate is validated up front so the reported error names the
// first bad target in input order.
func (s *proximityService) Measure(ctx context.Context, reference geo.Coordinate, targets []geo.Coordinate) ([]usecase.Measurement, error) {
	if err := reference.Validate(); err != nil {
		return nil, errors.WithMessage(err, "reference")
	}
	for i, target := range targets {
		if err := target.Validate(); err != nil {
			return nil, errors.WithMessagef(err, "target %d", i)
		}
	}

	measurements := make([]usecase.Measurement, len(targets))
	if len(targets) == 0 {
		return measurements, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workerCount(len(targets)))

	for i, target := range targets {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			distanceKm := geo.Distance(reference, target)
			display, err := geo.FormatDistance(distanceKm)
			if err != nil {
				return errors.WithMessagef(err, "target %d", i)
			}

			measurements[i] = usecase.Measurement{
				Target:     target,
				DistanceKm: distanceKm,
				Display:    display,
			}

			return nil
		})
	}

	err := group.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, errors.Wrap(ctxErr, "distance measurement canceled")
	}
	if err != nil {
		return nil, err
	}

	return measurements, nil
}

// Nearby runs a bounding-box query and then applies the exact radius filter.
// The box is widened by PreFilterMultiplier so rows on the circle survive
// the coarse SQL cut.
func (s *proximityService) Nearby(ctx context.Context, input *usecase.NearbyInput) (*usecase.NearbyResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("nearby input is required")
	}

	radiusKm, err := s.resolveRadius(input.RadiusKm)
	if err != nil {
		return nil, err
	}

	limit, err := s.resolveLimit(input.Limit)
	if err != nil {
		return nil, err
	}

	if err := input.Reference.Validate(); err != nil {
		return nil, errors.WithMessage(err, "reference")
	}

	bound := s.prefilterBound(input.Reference, radiusKm)

	candidates, err := s.restaurantRepo.FindActiveWithinBound(ctx, bound)
	if err != nil {
		return nil, fmt.Errorf("failed to find candidate restaurants: %w", err)
	}

	within, err := geo.FilterByRadius(candidates, input.Reference, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to filter restaurants by radius: %w", err)
	}

	ranked, err := geo.RankByDistance(within, input.Reference)
	if err != nil {
		return nil, fmt.Errorf("failed to sort restaurants by distance: %w", err)
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	restaurants := make([]*usecase.RestaurantDistance, 0, len(ranked))
	for _, r := range ranked {
		display, err := geo.FormatDistance(r.DistanceKm)
		if err != nil {
			return nil, err
		}

		restaurants = append(restaurants, &usecase.RestaurantDistance{
			Restaurant: r.Entity,
			DistanceKm: r.DistanceKm,
			Display:    display,
		})
	}

	return &usecase.NearbyResult{
		RadiusKm:    radiusKm,
		Restaurants: restaurants,
	}, nil
}

// prefilterBound returns a box that contains every point within radiusKm of
// center as measured by geo.Distance.
func (s *proximityService) prefilterBound(center geo.Coordinate, radiusKm float64) orb.Bound {
	multiplier := max(s.config.PreFilterMultiplier, 1)
	distanceM := radiusKm * metersPerKm * orbRadiusRatio * multiplier * (1 + boundSlack)

	return orbgeo.NewBoundAroundPoint(center.Point(), distanceM)
}

// RadiusOptions returns the configured radius chips
func (s *proximityService) RadiusOptions() usecase.RadiusOptions {
	return usecase.RadiusOptions{
		OptionsKm: append([]float64(nil), s.config.RadiusOptions...),
		DefaultKm: s.config.DefaultRadiusKm,
		MaxKm:     s.config.MaxRadiusKm,
	}
}

func (s *proximityService) resolveRadius(radiusKm float64) (float64, error) {
	if radiusKm == 0 {
		return s.config.DefaultRadiusKm, nil
	}

	if err := geo.ValidateRadius(radiusKm); err != nil {
		return 0, err
	}

	if radiusKm > s.config.MaxRadiusKm {
		return 0, errors.Wrapf(geo.ErrInvalidRadius, "radius %v km exceeds the %v km maximum", radiusKm, s.config.MaxRadiusKm)
	}

	return radiusKm, nil
}

func (s *proximityService) resolveLimit(limit int) (int, error) {
	if limit < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("limit must not be negative")
	}

	if limit == 0 || limit > s.config.MaxResults {
		return s.config.MaxResults, nil
	}

	return limit, nil
}

func (s *proximityService) workerCount(targetCount int) int {
	return min(s.config.Workers, targetCount)
}
