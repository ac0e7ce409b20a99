// internal/model/error.go
package model

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrUnavailable    = errors.New("dependency unavailable")
	ErrForbidden      = errors.New("forbidden")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("resource conflict")
	ErrGroupFull      = errors.New("group is full")
)

// ErrorDetail is the client-facing body of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError carries a client-facing detail plus a wrapped sentinel used for
// status-code mapping.
type AppError struct {
	Detail  ErrorDetail
	wrapped error
}

func NewAppError(code, message, field string, wrapped error) *AppError {
	return &AppError{
		Detail:  ErrorDetail{Code: code, Message: message, Field: field},
		wrapped: wrapped,
	}
}

func (e *AppError) Error() string {
	if e.wrapped != nil {
		return e.Detail.Message + ": " + e.wrapped.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.wrapped
}

// StoreError wraps a storage failure. Connection-level errors carry
// ErrUnavailable, so the caller sees a retryable 503 rather than a 500.
func StoreError(message string, err error) *AppError {
	if isUnavailable(err) {
		return NewAppError("DEPENDENCY_UNAVAILABLE", message, "", fmt.Errorf("%w: %w", ErrUnavailable, err))
	}
	return NewAppError("INTERNAL_SERVER_ERROR", message, "", err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
