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

// ErrForbidden indicates that the requester is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not allowed")

// ErrInsufficientFunds indicates that a debit would drive an account balance
// below zero. Returned both by the pre-checks and by the atomic commit, which
// re-validates against the locked rows.
var ErrInsufficientFunds = errors.New("insufficient balance in the source account")

// ErrInternal indicates an infrastructure-level failure. Callers may safely retry:
// operations returning it guarantee that no partial state was persisted.
var ErrInternal = errors.New("internal error")

// AppError carries an infrastructure error together with a status code and a
// message that is safe to show to callers.
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

// NewAppError wraps an underlying error with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
