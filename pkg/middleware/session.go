package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	SessionCookie = "FASAL_SID"
	SessionHeader = "X-Session-Id"
	sessionKey    = "sid"
)

// Session gives every visitor a stable session id. The id is taken from the
// X-Session-Id header or the session cookie; a missing or malformed one is
// replaced by a fresh UUID and written back as a cookie.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := c.Request().Header.Get(SessionHeader)
			if sid == "" {
				if ck, err := c.Cookie(SessionCookie); err == nil {
					sid = ck.Value
				}
			}
			if _, err := uuid.Parse(sid); err != nil {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{Name: SessionCookie, Value: sid, Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
			}
			c.Set(sessionKey, sid)
			c.Response().Header().Set(SessionHeader, sid)
			return next(c)
		}
	}
}

func SessionID(c echo.Context) string {
	sid, _ := c.Get(sessionKey).(string)
	return sid
}
