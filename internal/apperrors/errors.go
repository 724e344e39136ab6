package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found, or is
// outside the caller's authorized scope.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition indicates an action was attempted on a leave application
// that is no longer pending.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrInsufficientBalance indicates an approval would overdraw the remaining entitlement.
var ErrInsufficientBalance = errors.New("insufficient leave balance")

// ErrConflict indicates the submitted date range overlaps an active application.
var ErrConflict = errors.New("overlapping leave application")

// ErrPersistence indicates a storage-layer failure; every partial mutation has
// been rolled back.
var ErrPersistence = errors.New("persistence failure")

// NewInvalidTransition builds an ErrInvalidTransition reporting the status the
// application was observed in.
func NewInvalidTransition(currentStatus string) error {
	return fmt.Errorf("%w: application is already %s", ErrInvalidTransition, currentStatus)
}

// NewInsufficientBalance builds an ErrInsufficientBalance reporting what was
// requested against what remains.
func NewInsufficientBalance(requested, remaining string) error {
	return fmt.Errorf("%w: requested %s day(s), %s remaining", ErrInsufficientBalance, requested, remaining)
}
