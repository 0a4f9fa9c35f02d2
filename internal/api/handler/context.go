package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxCallerID extracts the caller identity injected by the Auth middleware.
// Its presence proves the middleware ran; a handler reached without it is a
// wiring error and is rejected as unauthorized rather than served.
func ctxCallerID(c echo.Context) (string, error) {
	id, _ := c.Get("caller_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
