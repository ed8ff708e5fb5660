package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmandi/storefront/pkg/auth"
)

func gatedEcho(secret string) *echo.Echo {
	e := echo.New()
	e.GET("/draft", func(c echo.Context) error {
		return c.String(http.StatusOK, MobileFromContext(c))
	}, SignupGateMiddleware(secret))
	return e
}

func TestSignupGateMiddleware(t *testing.T) {
	const secret = "test-secret-key"

	t.Run("Success - valid token passes mobile to the handler", func(t *testing.T) {
		token, err := auth.GenerateSignupToken("9876543210", time.Now(), secret, 24)
		require.NoError(t, err)

		e := gatedEcho(secret)
		req := httptest.NewRequest(http.MethodGet, "/draft", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "9876543210", rec.Body.String())
	})

	t.Run("Failure - missing authorization header", func(t *testing.T) {
		e := gatedEcho(secret)
		req := httptest.NewRequest(http.MethodGet, "/draft", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Failure - malformed bearer header", func(t *testing.T) {
		e := gatedEcho(secret)
		req := httptest.NewRequest(http.MethodGet, "/draft", nil)
		req.Header.Set("Authorization", "token-without-scheme")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Failure - token signed with another secret", func(t *testing.T) {
		token, err := auth.GenerateSignupToken("9876543210", time.Now(), "other-secret", 24)
		require.NoError(t, err)

		e := gatedEcho(secret)
		req := httptest.NewRequest(http.MethodGet, "/draft", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
