package middleware

import (
	"errors"
	"net/http"

	"contact-directory/internal/models"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// JWTAuth configures Echo's JWT middleware for the bearer-token guard.
// After validation the caller identity is exposed to handlers through the
// "userID" and "username" context keys.
func JWTAuth(jwtSecretKey string) echo.MiddlewareFunc {
	config := echojwt.Config{
		// NewClaimsFunc tells the middleware which claims type to parse into.
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(models.JwtCustomClaims)
		},
		SigningKey: []byte(jwtSecretKey),

		// SuccessHandler runs after a token validates. "user" is the default
		// context key echo-jwt stores the parsed token under.
		SuccessHandler: func(c echo.Context) {
			token := c.Get("user").(*jwt.Token)
			claims := token.Claims.(*models.JwtCustomClaims)

			c.Set("userID", claims.UserID)
			c.Set("username", claims.Username)
		},

		ErrorHandler: func(c echo.Context, err error) error {
			zerolog.Ctx(c.Request().Context()).Warn().Err(err).Msg("jwt rejected")

			switch {
			case errors.Is(err, echojwt.ErrJWTMissing):
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "missing or malformed token"})
			case errors.Is(err, jwt.ErrTokenExpired):
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "token has expired"})
			default:
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Errors: "invalid or expired token"})
			}
		},
	}
	return echojwt.WithConfig(config)
}
