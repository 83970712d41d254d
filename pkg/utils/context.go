package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ExtractUserInfo reads the authenticated caller's identity placed on the
// echo context by the auth middleware.
func ExtractUserInfo(c echo.Context) (userID, username string, err error) {
	userID, ok := c.Get("userID").(string)
	if !ok || userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
	}
	username, ok = c.Get("username").(string)
	if !ok || username == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
	}
	return userID, username, nil
}
