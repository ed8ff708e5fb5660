package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	// Create rate limiter: 120 requests per minute (2 per second) with burst of 1
	rl := NewRateLimiter(120, 1)

	// Get limiter for IP
	limiter := rl.GetLimiter("192.168.1.1")

	// First request should be allowed
	assert.True(t, limiter.Allow(), "First request should be allowed")

	// Second request should be blocked (burst exhausted)
	assert.False(t, limiter.Allow(), "Second request should be blocked")

	// Wait for token refill (120 req/min = 2 req/sec = 0.5 seconds per token)
	time.Sleep(600 * time.Millisecond)

	// Third request should be allowed after waiting
	assert.True(t, limiter.Allow(), "Third request should be allowed after waiting")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	rl := NewRateLimiter(2, 1)

	// Get limiters for different IPs
	limiter1 := rl.GetLimiter("192.168.1.1")
	limiter2 := rl.GetLimiter("192.168.1.2")

	// Both should be allowed (different IPs have separate limiters)
	assert.True(t, limiter1.Allow(), "IP 1 first request should be allowed")
	assert.True(t, limiter2.Allow(), "IP 2 first request should be allowed")

	// Both should be blocked after burst
	assert.False(t, limiter1.Allow(), "IP 1 second request should be blocked")
	assert.False(t, limiter2.Allow(), "IP 2 second request should be blocked")
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(2, 1)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}
	wrapped := rl.RateLimitMiddleware()(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/registration/request-code", nil)
	req.Header.Set("X-Real-IP", "10.0.0.1")

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	assert.NoError(t, wrapped(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// burst exhausted, same IP is throttled
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	assert.NoError(t, wrapped(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
