package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORS applies the permissive cross-origin policy the mobile and web clients
// expect and answers preflight requests directly with 200.
func CORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
			h.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")

			if c.Request().Method == http.MethodOptions {
				return c.String(http.StatusOK, "ok")
			}
			return next(c)
		}
	}
}
