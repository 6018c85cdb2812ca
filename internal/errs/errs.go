// Package errs provides the structured error model shared by the farm
// services. Services return machine-readable codes plus parameters;
// rendering user-facing text is the transport layer's problem.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel kinds. Every AppError wraps exactly one of these so callers
// can branch with errors.Is without inspecting codes.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage failure")
)

type AppError struct {
	// Code is a machine-readable error code (e.g. "farm_not_found").
	Code string `json:"code"`

	// Message is a developer-readable default message. Localization
	// happens outside the core, keyed by Code and Params.
	Message string `json:"message"`

	// HTTPStatus is the transport status the code maps to.
	HTTPStatus int `json:"-"`

	// Params carries structured context for message interpolation.
	Params map[string]any `json:"params,omitempty"`

	// Err is the wrapped sentinel (and optionally a cause chained
	// behind it).
	Err error `json:"-"`
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithParams attaches interpolation parameters and returns the error.
func (e *AppError) WithParams(params map[string]any) *AppError {
	e.Params = params
	return e
}

func newAppError(kind error, status int, code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: status,
		Err:        kind,
	}
}

func NotFound(code, message string) *AppError {
	return newAppError(ErrNotFound, http.StatusNotFound, code, message)
}

func Forbidden(code, message string) *AppError {
	return newAppError(ErrForbidden, http.StatusForbidden, code, message)
}

func Validation(code, message string) *AppError {
	return newAppError(ErrValidation, http.StatusBadRequest, code, message)
}

func Conflict(code, message string) *AppError {
	return newAppError(ErrConflict, http.StatusConflict, code, message)
}

func Storage(code, message string, cause error) *AppError {
	e := newAppError(ErrStorage, http.StatusInternalServerError, code, message)
	if cause != nil {
		e.Err = fmt.Errorf("%w: %w", ErrStorage, cause)
	}
	return e
}
