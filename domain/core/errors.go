package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound      = errors.New("resource not found")
	ErrBatchNotFound = fmt.Errorf("%w: batch", ErrNotFound)

	// Validation errors
	ErrUnknownTestType = errors.New("unrecognized test type")
	ErrMissingDF       = errors.New("required degrees of freedom missing")
	ErrPOutOfRange     = errors.New("reported p-value out of range")
	ErrBadOperator     = errors.New("unrecognized comparison operator")
	ErrBadTail         = errors.New("tail must be one or two")
	ErrBadSampleSize   = errors.New("sample size must be a positive integer")

	// Domain failures (mathematically undefined computations)
	ErrNonPositiveDF = errors.New("degrees of freedom must be positive")
	ErrOutOfDomain   = errors.New("statistic outside the distribution domain")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnknownTestType) ||
		errors.Is(err, ErrMissingDF) ||
		errors.Is(err, ErrPOutOfRange) ||
		errors.Is(err, ErrBadOperator) ||
		errors.Is(err, ErrBadTail) ||
		errors.Is(err, ErrBadSampleSize)
}

func IsDomainError(err error) bool {
	return errors.Is(err, ErrNonPositiveDF) ||
		errors.Is(err, ErrOutOfDomain)
}
