package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"messagely/config"
	deliverycontext "messagely/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, mw echo.MiddlewareFunc, req *http.Request, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, mw(next)(c))

	return rec
}

func TestRequestIDMiddleware_UsesIncomingHeader(t *testing.T) {
	var logs bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")

	rec := serve(t, m.Process, req, func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(ctx))
		assert.Equal(t, "req-1", deliverycontext.GetRequestID(c))
		deliverycontext.GetLogger(ctx).Info("inside")

		return c.NoContent(http.StatusNoContent)
	})

	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, logs.String(), "request_id=req-1")
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	rec := serve(t, m.Process, httptest.NewRequest(http.MethodGet, "/", nil), func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.NoError(t, err)
}

func TestLoggerMiddleware_LogsOnlyInDebug(t *testing.T) {
	for _, debug := range []bool{false, true} {
		var logs bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&logs, nil)), cfg)

		serve(t, m.Handle, httptest.NewRequest(http.MethodGet, "/users?x=1", nil), func(c echo.Context) error {
			return c.NoContent(http.StatusNotFound)
		})

		if debug {
			assert.Contains(t, logs.String(), "HTTP Request")
			assert.Contains(t, logs.String(), "status=404")
			assert.Contains(t, logs.String(), "query=")
		} else {
			assert.Empty(t, logs.String())
		}
	}
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("req-1"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("bad\nid"))
	assert.False(t, validRequestID(string(make([]byte, maxRequestIDLength+1))))
}
