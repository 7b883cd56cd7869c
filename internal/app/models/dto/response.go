package dto

// ErrorKind is the stable error discriminator rendered to clients. The
// presentation layer localizes its own messages; only the kind is contractual.
type ErrorKind string

const (
	ErrorKindValidation        ErrorKind = "VALIDATION_ERROR"
	ErrorKindConflict          ErrorKind = "CONFLICT"
	ErrorKindDanglingReference ErrorKind = "DANGLING_REFERENCE"
	ErrorKindNotFound          ErrorKind = "NOT_FOUND"
	ErrorKindForbidden         ErrorKind = "FORBIDDEN"
	ErrorKindAuthFailure       ErrorKind = "AUTH_FAILURE"
	ErrorKindUnavailable       ErrorKind = "UNAVAILABLE"
	ErrorKindInternal          ErrorKind = "INTERNAL"
)

// APIResponse is the request/response envelope for every endpoint:
// {ok: true, data} on success, {ok: false, errorKind, message} on failure.
type APIResponse struct {
	Ok        bool      `json:"ok" example:"true"`
	Data      any       `json:"data,omitempty"`
	ErrorKind ErrorKind `json:"errorKind,omitempty" example:"CONFLICT"`
	Message   string    `json:"message,omitempty" example:"student number already exists"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data any) APIResponse {
	return APIResponse{Ok: true, Data: data}
}

// NewErrorResponse builds a failure envelope.
func NewErrorResponse(kind ErrorKind, message string) APIResponse {
	return APIResponse{Ok: false, ErrorKind: kind, Message: message}
}

// PaginationInfo describes the page returned by a list endpoint. Page indexes
// are zero-based; the page size is a server-side configuration constant.
type PaginationInfo struct {
	PageIndex  int `json:"pageIndex" example:"0"`
	PageSize   int `json:"pageSize" example:"10"`
	TotalPages int `json:"totalPages" example:"4"`
	TotalItems int `json:"totalItems" example:"37"`
}
