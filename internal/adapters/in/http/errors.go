package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"varto/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for every failed request. Kind
// carries the domain error class so clients can branch without parsing the
// message text.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// respondError maps a domain error to an HTTP status by its sentinel class.
func respondError(ctx echo.Context, err error) error {
	code, kind := classify(err)
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
		Kind:    kind,
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied"
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict, "invalid_transition"
	case errors.Is(err, errs.ErrCourierBusy):
		return http.StatusConflict, "courier_busy"
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, "value_required"
	case errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, "value_out_of_range"
	case errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, "value_invalid"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
