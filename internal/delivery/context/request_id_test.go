package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetRequestIDFromContext(c.Request().Context()))

	SetRequestID(c, "req-1")

	assert.Equal(t, "req-1", GetRequestID(c))
	assert.Equal(t, "req-1", GetRequestIDFromContext(c.Request().Context()))
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.New(slog.NewTextHandler(nil, nil))

	assert.Same(t, fallback, LoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, LoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
