package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shootdesk/internal/pkg/errs"
)

// Envelope is the uniform response body every endpoint returns.
type Envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func ok(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, Envelope{Success: true, Data: data})
}

func fail(ctx echo.Context, status int, message string, errs ...string) error {
	return ctx.JSON(status, Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// failFromError maps a core error to the HTTP status it deserves. Internal
// failures surface as a generic 500; the detail stays in the server log.
func failFromError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return fail(ctx, http.StatusBadRequest, "invalid request", err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return fail(ctx, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, errs.ErrInvalidOperation):
		return fail(ctx, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, errs.ErrQuotaExceeded):
		return fail(ctx, http.StatusTooManyRequests, "quota exceeded", err.Error())
	default:
		return fail(ctx, http.StatusInternalServerError, "internal error")
	}
}
