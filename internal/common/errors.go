package common

import "fmt"

type Code string

const (
	CodeValidation        Code = "validation"
	CodeNotFound          Code = "not_found"
	CodeConflict          Code = "conflict"
	CodeForbidden         Code = "forbidden"
	CodeUnauthorized      Code = "unauthorized"
	CodeInvalidTransition Code = "invalid_transition"
	CodePersistence       Code = "persistence"
	CodeRateLimited       Code = "rate_limited"
	CodeInternal          Code = "internal"
)

// Error is the single error shape returned by repositories and services.
// Fields is populated for validation errors only.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func NewValidationError(message string, fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

func Is(err error, code Code) bool {
	appErr, ok := err.(*Error)
	if !ok {
		return false
	}
	return appErr.Code == code
}
