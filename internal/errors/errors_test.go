package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinel(t *testing.T) {
	sentinel := New("boom")

	wrapped := Wrapf(sentinel, "while measuring %d", 3)
	assert.True(t, Is(wrapped, sentinel))
	assert.Equal(t, "while measuring 3: boom", wrapped.Error())

	annotated := WithMessage(wrapped, "entity")
	assert.True(t, Is(annotated, sentinel))
	assert.Equal(t, "entity: while measuring 3: boom", annotated.Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithMessagef(nil, "ignored %d", 1))
}
