package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omarhn/registra/internal/app/models/dto"
	"github.com/omarhn/registra/internal/pkg/apperrors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   dto.ErrorKind
		status int
	}{
		{"validation", apperrors.NewValidationError("name cannot be empty"), dto.ErrorKindValidation, http.StatusBadRequest},
		{"conflict", apperrors.NewConflictError("student number already exists"), dto.ErrorKindConflict, http.StatusConflict},
		{"dangling reference", apperrors.ErrDanglingReference, dto.ErrorKindDanglingReference, http.StatusUnprocessableEntity},
		{"not found", apperrors.ErrNotFound, dto.ErrorKindNotFound, http.StatusNotFound},
		{"forbidden", apperrors.ErrForbidden, dto.ErrorKindForbidden, http.StatusForbidden},
		{"auth failure", apperrors.ErrAuthFailure, dto.ErrorKindAuthFailure, http.StatusUnauthorized},
		{"invalid token", apperrors.ErrTokenInvalid, dto.ErrorKindAuthFailure, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, dto.ErrorKindAuthFailure, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), dto.ErrorKindInternal, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kind, status := classify(tc.err)
			assert.Equal(t, tc.kind, kind)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestClassifyKeepsKindThroughWrapping(t *testing.T) {
	// Service-layer wrapping
	err := fmt.Errorf("error removing student: %w", apperrors.ErrNotFound)
	kind, status := classify(err)
	assert.Equal(t, dto.ErrorKindNotFound, kind)
	assert.Equal(t, http.StatusNotFound, status)

	// A failed rollback wraps both the store error and the rollback error;
	// the store kind must still decide the response.
	err = fmt.Errorf("error: %w, rollback error: %w",
		apperrors.NewConflictError("subject code already exists"), errors.New("connection closed"))
	kind, status = classify(err)
	assert.Equal(t, dto.ErrorKindConflict, kind)
	assert.Equal(t, http.StatusConflict, status)
}
