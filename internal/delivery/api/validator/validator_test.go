package validator

import (
	"testing"

	domainerrors "foodradar/internal/domain/errors"
	"foodradar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string  `json:"name" validate:"required"`
	RadiusKm float64 `json:"radius_km" validate:"gte=0"`
	Ignored  string  `json:"-"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{Name: "Katz's", RadiusKm: 5}))

	err := v.Validate(&sampleRequest{RadiusKm: -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "name is a required field")
	assert.Contains(t, appErr.Details(), "radius_km must be 0 or greater")
}
