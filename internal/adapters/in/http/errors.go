package http

import (
	"errors"
	"log/slog"
	"net/http"

	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors to status codes. Anything unclassified is
// logged and answered with an opaque 500.
func writeError(c echo.Context, logger *slog.Logger, err error) error {
	var (
		stateErr *errs.InvalidStateError
		refErr   *errs.InvalidReferenceError
	)

	switch {
	case errors.As(err, &stateErr):
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: stateErr.Error(),
			Allowed: stateErr.Allowed,
		})
	case errors.As(err, &refErr):
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: refErr.Error(),
			Missing: refErr.Missing,
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, errs.ErrObjectIsReferenced):
		return c.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	logger.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
	})
}
