package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cryptofolio/portfolio-api/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware. Presence
// proves the middleware ran; an empty value on a protected route means a
// wiring mistake, rejected with 401 before any service call.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
