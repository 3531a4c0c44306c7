package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

const GatewayHeader = "X-Gateway-Token"

// GatewayToken admits only callers presenting the shared messaging-gateway
// token. With no token configured every request is refused, so gateway
// callbacks stay closed until the deployment sets one.
func GatewayToken(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "gateway callbacks disabled"})
			}
			got := c.Request().Header.Get(GatewayHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid gateway token"})
			}
			return next(c)
		}
	}
}
