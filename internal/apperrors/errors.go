package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller does not own the target resource.
var ErrForbidden = errors.New("access to resource denied")

// ErrConflict indicates the resource is not in a state that allows the operation.
var ErrConflict = errors.New("resource state conflict")

// ErrInternal indicates an unexpected infrastructure failure. The failed
// unit never partially committed and is safe to retry.
var ErrInternal = errors.New("internal error")

// ErrInsufficientFunds indicates an account balance cannot cover a debit.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrAccountInactive indicates the account exists but is not ACTIVE.
var ErrAccountInactive = errors.New("account is not active")

// AppError wraps an underlying error with a status code and a caller-facing
// message. The underlying store error is kept for logging but never surfaced
// to callers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
