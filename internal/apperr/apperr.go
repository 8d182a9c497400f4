package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Code is a stable, machine-readable error code exposed to API clients.
// Internal driver messages are never echoed to the client.
type Code string

const (
	CodeNotFound   Code = "not_found"          // no row matches the given key
	CodeConflict   Code = "constraint_violation" // unique or foreign key constraint failed
	CodeValidation Code = "validation_failed"  // enum or required-field violation
	CodeInternal   Code = "internal_error"     // any other storage/driver failure
)

// Error is the application error type carried from services to handlers.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports a missing row.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Conflict reports a unique or foreign key constraint violation.
func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// Validation reports an enum or required-field violation.
func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// Internal wraps an unexpected failure.
func Internal(message string, err error) *Error {
	return &Error{Code: CodeInternal, Message: message, Err: err}
}

// FromDB translates a gorm error into the application taxonomy. The resource
// name is used in the client-facing message; the driver error stays wrapped.
// Requires gorm's TranslateError so constraint failures surface as
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func FromDB(err error, resource string) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(resource + " not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict(resource + " already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Conflict(resource + " references a missing row")
	default:
		return Internal("failed to access "+resource, err)
	}
}

// IsCode reports whether err is an *Error with the given code.
func IsCode(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// HTTPStatus maps an error onto the HTTP status used at the boundary.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
