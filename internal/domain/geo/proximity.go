package geo

import (
	"cmp"
	"slices"

	"foodradar/internal/errors"
)

// Ranked pairs an entity with its distance from a reference coordinate.
type Ranked[T Located] struct {
	Entity     T
	DistanceKm float64
}

// FilterByRadius returns the entities whose distance from reference is at
// most radiusKm. The bound is inclusive and input order is preserved.
func FilterByRadius[T Located](entities []T, reference Coordinate, radiusKm float64) ([]T, error) {
	if err := ValidateRadius(radiusKm); err != nil {
		return nil, err
	}
	if err := reference.Validate(); err != nil {
		return nil, errors.WithMessage(err, "reference")
	}

	kept := make([]T, 0, len(entities))
	for i, entity := range entities {
		c := entity.Coordinate()
		if err := c.Validate(); err != nil {
			return nil, errors.WithMessagef(err, "entity %d", i)
		}

		if Distance(reference, c) <= radiusKm {
			kept = append(kept, entity)
		}
	}

	return kept, nil
}

// SortByDistance returns a copy of entities ordered by ascending distance
// from reference. Entities at equal distance keep their input order.
func SortByDistance[T Located](entities []T, reference Coordinate) ([]T, error) {
	ranked, err := RankByDistance(entities, reference)
	if err != nil {
		return nil, err
	}

	sorted := make([]T, len(ranked))
	for i, r := range ranked {
		sorted[i] = r.Entity
	}

	return sorted, nil
}

// RankByDistance is SortByDistance that also returns the computed distances,
// so callers do not have to measure each entity twice.
func RankByDistance[T Located](entities []T, reference Coordinate) ([]Ranked[T], error) {
	if err := reference.Validate(); err != nil {
		return nil, errors.WithMessage(err, "reference")
	}

	ranked := make([]Ranked[T], len(entities))
	for i, entity := range entities {
		c := entity.Coordinate()
		if err := c.Validate(); err != nil {
			return nil, errors.WithMessagef(err, "entity %d", i)
		}

		ranked[i] = Ranked[T]{Entity: entity, DistanceKm: Distance(reference, c)}
	}

	slices.SortStableFunc(ranked, func(a, b Ranked[T]) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return ranked, nil
}

// ValidateRadius reports ErrInvalidRadius unless radiusKm is finite and positive.
func ValidateRadius(radiusKm float64) error {
	if !isFinite(radiusKm) || radiusKm <= 0 {
		return errors.Wrapf(ErrInvalidRadius, "radius %v km must be a positive finite number", radiusKm)
	}

	return nil
}
