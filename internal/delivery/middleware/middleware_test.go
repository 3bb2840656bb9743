package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodradar/config"
	deliverycontext "foodradar/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id is kept", header: "abc-123", wantSame: true},
		{name: "missing id is generated", header: "", wantSame: false},
		{name: "oversized id is replaced", header: strings.Repeat("a", maxRequestIDLength+1), wantSame: false},
		{name: "control characters are replaced", header: "abc\x07def", wantSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenID, seenCtxID string
			var seenLogger *slog.Logger
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				seenID = deliverycontext.GetRequestID(c)
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				seenLogger = deliverycontext.LoggerOrDefault(c.Request().Context(), nil)

				return nil
			})

			require.NoError(t, handler(c))
			require.NotEmpty(t, seenID)
			assert.Equal(t, seenID, seenCtxID)
			assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.NotNil(t, seenLogger)

			if tt.wantSame {
				assert.Equal(t, tt.header, seenID)
			} else {
				assert.NotEqual(t, tt.header, seenID)
				assert.Len(t, seenID, 36)
			}
		})
	}
}

func runLogged(t *testing.T, debug bool, handler echo.HandlerFunc) string {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/proximity/radius-options?x=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewLoggerMiddleware(logger, cfg).Handle(handler)(c))

	return buf.String()
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	notFound := func(c echo.Context) error { return echo.ErrNotFound }
	boom := func(c echo.Context) error { return echo.NewHTTPError(http.StatusInternalServerError, "boom") }

	assert.Empty(t, runLogged(t, false, ok), "successful requests are quiet outside debug")

	debugLine := runLogged(t, true, ok)
	assert.Contains(t, debugLine, "level=INFO")
	assert.Contains(t, debugLine, "status=200")
	assert.Contains(t, debugLine, `query="x=1"`)

	warnLine := runLogged(t, false, notFound)
	assert.Contains(t, warnLine, "level=WARN")
	assert.Contains(t, warnLine, "status=404")

	errLine := runLogged(t, false, boom)
	assert.Contains(t, errLine, "level=ERROR")
	assert.Contains(t, errLine, "status=500")
}
