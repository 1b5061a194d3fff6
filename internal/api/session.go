package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// The shopper's opaque session id travels in a cookie, or in a header for
// clients without cookies.
const (
	SessionCookie = "khaleed-session"
	SessionHeader = "X-Session-ID"

	sessionContextKey = "session_id"
	maxSessionIDLen   = 128
	sessionMaxAge     = 30 * 24 * 60 * 60
)

// SessionMiddleware attaches a session id to every request, minting a new one
// when the client sent none.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(SessionHeader)
			if id == "" {
				if cookie, err := c.Cookie(SessionCookie); err == nil {
					id = cookie.Value
				}
			}
			if id == "" || len(id) > maxSessionIDLen {
				id = uuid.NewString()
			}

			c.Set(sessionContextKey, id)
			c.Response().Header().Set(SessionHeader, id)
			c.SetCookie(&http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   sessionMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			return next(c)
		}
	}
}

// SessionID returns the id set by SessionMiddleware.
func SessionID(c echo.Context) string {
	id, _ := c.Get(sessionContextKey).(string)
	return id
}
