package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the response envelope. Every
// endpoint funnels failures through here so the kind/status mapping stays in
// one place.
func HandleAPIError(c *gin.Context, err error) {
	kind, status := classify(err)

	message := err.Error()
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}
	if kind == dto.ErrorKindInternal {
		// Never leak internal error details to clients.
		message = "internal server error"
	}

	c.JSON(status, dto.NewErrorResponse(kind, message))
}

func classify(err error) (dto.ErrorKind, int) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return dto.ErrorKindValidation, http.StatusBadRequest
	case errors.Is(err, apperrors.ErrConflict):
		return dto.ErrorKindConflict, http.StatusConflict
	case errors.Is(err, apperrors.ErrDanglingReference):
		return dto.ErrorKindDanglingReference, http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrNotFound):
		return dto.ErrorKindNotFound, http.StatusNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		return dto.ErrorKindForbidden, http.StatusForbidden
	case errors.Is(err, apperrors.ErrAuthFailure),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrInvalidFormat):
		return dto.ErrorKindAuthFailure, http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrUnavailable):
		return dto.ErrorKindUnavailable, http.StatusServiceUnavailable
	default:
		return dto.ErrorKindInternal, http.StatusInternalServerError
	}
}
