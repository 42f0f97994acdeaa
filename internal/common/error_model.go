package common

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorCode string

const (
	ErrorCodeValidation   ErrorCode = "validation"
	ErrorCodeAuth         ErrorCode = "auth"
	ErrorCodeUnauthorized ErrorCode = "unauthorized"
	ErrorCodeForbidden    ErrorCode = "forbidden"
	ErrorCodeConflict     ErrorCode = "conflict"
	ErrorCodeNotFound     ErrorCode = "not_found"
	ErrorCodeStorage      ErrorCode = "storage"
	ErrorCodeInternal     ErrorCode = "internal"
)

// AuthErrorMessage is the stable marker returned for every token failure.
const AuthErrorMessage = "jwt_error"

// ServiceError is the only error type the pipeline hands to the translator.
// Operational errors carry a message that is safe to show to clients.
type ServiceError struct {
	Code        ErrorCode
	Message     string
	Operational bool
	cause       error
}

func (e *ServiceError) Error() string {
	if e.cause != nil && e.cause.Error() != e.Message {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.cause
}

// Stack renders the stack captured when the error (or its cause) was created.
func (e *ServiceError) Stack() string {
	if e.cause == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.cause)
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message, Operational: true, cause: errors.New(message)}
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

// NewAuthError reports a missing, malformed or expired session token.
func NewAuthError() error {
	return NewServiceError(ErrorCodeAuth, AuthErrorMessage)
}

// NewUnauthorizedError reports rejected credentials (e.g. wrong password).
func NewUnauthorizedError(message string) error {
	return NewServiceError(ErrorCodeUnauthorized, message)
}

func NewForbiddenError(message string) error {
	return NewServiceError(ErrorCodeForbidden, message)
}

func NewConflictError(message string) error {
	return NewServiceError(ErrorCodeConflict, message)
}

func NewNotFoundError(message string) error {
	return NewServiceError(ErrorCodeNotFound, message)
}

// NewStorageError wraps a blob storage failure; message is what clients see.
func NewStorageError(message string, cause error) error {
	return &ServiceError{Code: ErrorCodeStorage, Message: message, Operational: true, cause: withStack(cause, message)}
}

// WrapInternal marks an unexpected fault. Its message never reaches clients in production.
func WrapInternal(cause error, message string) error {
	return &ServiceError{Code: ErrorCodeInternal, Message: message, Operational: false, cause: withStack(cause, message)}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

func withStack(cause error, message string) error {
	if cause == nil {
		return errors.New(message)
	}
	return errors.WithStack(cause)
}
