package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bizmandi/storefront/pkg/auth"
	"github.com/bizmandi/storefront/pkg/models"
)

// ContextKeyMobile is where the gate middleware stores the verified
// mobile number
const ContextKeyMobile = "signup_mobile"

// SignupGateMiddleware validates the signup token issued after OTP
// verification. Draft and submit routes only accept requests carrying a
// valid token, and the mobile number always comes from the token, never
// from the request body.
func SignupGateMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "missing_token",
					Message: "Authorization header is required",
				})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token_format",
					Message: "Authorization header must be 'Bearer {token}'",
				})
			}

			claims, err := auth.ValidateSignupToken(parts[1], secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token",
					Message: "Verify your mobile number to continue",
				})
			}

			c.Set(ContextKeyMobile, claims.Mobile)
			return next(c)
		}
	}
}

// MobileFromContext returns the verified mobile number the gate
// middleware stored, or empty when the route is not gated
func MobileFromContext(c echo.Context) string {
	mobile, _ := c.Get(ContextKeyMobile).(string)
	return mobile
}
