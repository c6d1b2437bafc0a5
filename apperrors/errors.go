package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine readable error codes returned in response bodies
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeInvalidJSON   = "INVALID_JSON"
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeConflict      = "CONFLICT"
	CodeEmptyResult   = "NO_PRODUCTS"
	CodeInternal      = "INTERNAL_ERROR"
)

// Error is an application error that knows how it should be rendered over HTTP
type Error struct {
	Status  int               `json:"-"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(status int, code, message string, err error) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation reports missing or malformed input, keyed by JSON field name
func Validation(fields map[string]string) *Error {
	e := New(http.StatusBadRequest, CodeValidation, "Invalid request data", nil)
	e.Fields = fields
	return e
}

// InvalidJSON reports a request body that could not be decoded at all
func InvalidJSON(err error) *Error {
	return New(http.StatusBadRequest, CodeInvalidJSON, "Request body must be a JSON object", err)
}

// NotFound reports that a referenced record does not exist
func NotFound(message string) *Error {
	return New(http.StatusNotFound, CodeNotFound, message, nil)
}

// AlreadyExists reports a duplicate order-product association.
// Rendered as 400 to keep the established wire contract.
func AlreadyExists(message string) *Error {
	return New(http.StatusBadRequest, CodeAlreadyExists, message, nil)
}

// Conflict reports a unique-field collision such as a reused email
func Conflict(message string) *Error {
	return New(http.StatusConflict, CodeConflict, message, nil)
}

// EmptyResult reports an order without products when a total is requested
func EmptyResult(message string) *Error {
	return New(http.StatusNotFound, CodeEmptyResult, message, nil)
}

// Internal wraps an unexpected failure
func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, CodeInternal, message, err)
}

// From converts any error into an *Error, treating unknown errors as internal
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}

// IsNotFound reports whether err is a not-found application error
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == CodeNotFound
}
