package http

import (
	"errors"
	"net/http"

	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application error kinds to HTTP status codes:
// not-found to 404, duplicates to 409, validation failures to 400,
// everything else to 500.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFor(err), ErrorJSON{
		Code:    statusFor(err),
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	var (
		notFound      *errs.ObjectNotFoundError
		alreadyExists *errs.ObjectAlreadyExistsError
		invalid       *errs.ValueIsInvalidError
		required      *errs.ValueIsRequiredError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &alreadyExists):
		return http.StatusConflict
	case errors.As(err, &invalid), errors.As(err, &required):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorJSON{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
