package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Skipper decides whether a request bypasses token verification.
type Skipper func(c echo.Context) bool

// DefaultSkipper exempts the health check and the public auth endpoints so
// a first user can register and log in without a token.
func DefaultSkipper(c echo.Context) bool {
	path := c.Request().URL.Path
	if path == "/health" {
		return true
	}
	return strings.HasPrefix(path, "/api/v1/auth/")
}

// Middleware returns echo middleware enforcing a Bearer token on every
// non-skipped request. On success the claims are stored in the context under
// "user_id" and "username".
func Middleware(tm *TokenManager, skip Skipper) echo.MiddlewareFunc {
	if skip == nil {
		skip = DefaultSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip(c) {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := tm.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			return next(c)
		}
	}
}
