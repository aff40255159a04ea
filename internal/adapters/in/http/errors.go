package http

import (
	"errors"
	"net/http"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/discount"
	"cargo/internal/core/domain/model/receipt"
	"cargo/internal/core/ports"
	"cargo/internal/generated/servers"
	"cargo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf classifies a use case error.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ports.ErrTrackCodeExists),
		errors.Is(err, ports.ErrTrackCodeBilled),
		errors.Is(err, commands.ErrTrackCodeAlreadyBilled),
		errors.Is(err, receipt.ErrAlreadyPaid),
		errors.Is(err, discount.ErrAlreadyInactive):
		return http.StatusConflict
	case errors.Is(err, commands.ErrNoEligibleParcels),
		errors.Is(err, commands.ErrNothingToIssue),
		errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error. Internal errors are logged and
// answered with a generic message.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
