package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "laundry_session"

// Authenticator resolves a session token to the logged-in username.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// Session gates a route behind a live admin session. The cookie's token is
// verified and checked against the session registry; the username claim is
// injected into the request context on success.
func Session(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "please log in")
			}

			username, err := auth.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "please log in")
			}

			c.Set("username", username)
			return next(c)
		}
	}
}
