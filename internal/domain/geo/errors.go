package geo

import "foodradar/internal/errors"

// Input errors. None of them are transient; callers match with errors.Is.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidRadius     = errors.New("invalid radius")
	ErrInvalidDistance   = errors.New("invalid distance")
)
