package utils

import (
	"errors"
	"net/http"

	"contact-directory/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RespondWithJSON wraps payload in the {"data": ...} success envelope.
func RespondWithJSON(c echo.Context, status int, payload interface{}) error {
	return c.JSON(status, models.DataResponse{Data: payload})
}

// RespondWithPage wraps a list payload together with its paging metadata.
func RespondWithPage(c echo.Context, status int, payload interface{}, paging models.PageMetadata) error {
	return c.JSON(status, models.PagedResponse{Data: payload, Paging: paging})
}

// RespondWithError wraps message in the {"errors": ...} failure envelope.
func RespondWithError(c echo.Context, status int, message string) error {
	return c.JSON(status, models.ErrorResponse{Errors: message})
}

// HandleServiceError translates the service error taxonomy into an HTTP
// response. Validation failures carry their field list; unexpected errors
// are logged and hidden behind a generic 500.
func HandleServiceError(c echo.Context, err error) error {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Errors: ve.Fields})
	case errors.Is(err, models.ErrNotFound):
		return RespondWithError(c, http.StatusNotFound, models.ErrNotFound.Error())
	case errors.Is(err, models.ErrConflict):
		return RespondWithError(c, http.StatusConflict, models.ErrConflict.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		return RespondWithError(c, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
	default:
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("unhandled service error")
		return RespondWithError(c, http.StatusInternalServerError, "internal server error")
	}
}
