package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	headers := rec.Header()
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.NotEmpty(t, headers.Get("Strict-Transport-Security"))
	assert.NotEmpty(t, headers.Get("Content-Security-Policy"))
}

func TestRateLimiter_AllowsBurstThenBlocks(t *testing.T) {
	rl := NewRateLimiter()

	// Tokens refill far too slowly for the loop to matter
	limit := rate.Every(time.Hour)
	for i := 0; i < 3; i++ {
		assert.True(t, rl.allow("10.0.0.1:login", limit, 3), "request %d within burst", i)
	}
	assert.False(t, rl.allow("10.0.0.1:login", limit, 3))
}

func TestRateLimiter_BucketsAreIndependent(t *testing.T) {
	rl := NewRateLimiter()

	limit := rate.Every(time.Hour)
	for i := 0; i < 3; i++ {
		rl.allow("10.0.0.2:login", limit, 3)
	}
	assert.False(t, rl.allow("10.0.0.2:login", limit, 3))

	// Same IP, different bucket and a fresh limiter
	assert.True(t, rl.allow("10.0.0.2:api", limit, 3))
	// Different IP, same bucket
	assert.True(t, rl.allow("10.0.0.3:login", limit, 3))
}

func TestRateLimiter_MiddlewareReturns429(t *testing.T) {
	rl := NewRateLimiter()
	e := echo.New()

	handler := rl.RateLimit()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	var lastCode int
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/check-login", nil)
		req.Header.Set("X-Real-IP", "203.0.113.9")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}
