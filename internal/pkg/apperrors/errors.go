package apperrors

import "errors"

// Error kinds surfaced by the core. The presentation layer maps these to
// transport status codes; services and repositories never retry them.
var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks a unique-key collision (student number, staff email, subject code).
	ErrConflict = errors.New("conflict")
	// ErrDanglingReference marks a reference to an entity that does not exist.
	ErrDanglingReference = errors.New("dangling reference")
	// ErrNotFound marks an absent operation target.
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden marks an authorization failure.
	ErrForbidden = errors.New("permission denied")
	// ErrAuthFailure marks a credential mismatch. Deliberately generic: an unknown
	// identity and a wrong password produce the same error.
	ErrAuthFailure = errors.New("invalid credentials")
	// ErrUnavailable marks a transient persistence failure the caller may retry.
	ErrUnavailable = errors.New("persistence unavailable")
)

// Token errors raised by the JWT layer.
var (
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")
)

// CustomError carries operation context on top of a sentinel kind.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidation, Message: message}
}

// NewConflictError creates a conflict error with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewDanglingReferenceError creates a dangling-reference error with a message.
func NewDanglingReferenceError(message string) error {
	return &CustomError{Err: ErrDanglingReference, Message: message}
}

// NewNotFoundError creates a not-found error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrForbidden, Message: message}
}
