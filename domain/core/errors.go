package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Generator errors
	ErrInvalidRecordCount = errors.New("record count must be positive")

	// Statistical precondition errors
	ErrDegenerateTable   = errors.New("degenerate contingency table")
	ErrEmptyGroup        = errors.New("empty sample group")
	ErrZeroVariance      = errors.New("zero variance in both sample groups")
	ErrInsufficientData  = errors.New("insufficient data for analysis")
	ErrInvalidClaimValue = errors.New("claimed value outside the 0/1 domain")
)

// Error constructors with context
func NewDegenerateTableError(label string) error {
	return fmt.Errorf("%w: no observations for %s", ErrDegenerateTable, label)
}

func NewEmptyGroupError(group string) error {
	return fmt.Errorf("%w: %s", ErrEmptyGroup, group)
}

// IsValueError reports whether err is a statistical precondition violation.
func IsValueError(err error) bool {
	return errors.Is(err, ErrDegenerateTable) ||
		errors.Is(err, ErrEmptyGroup) ||
		errors.Is(err, ErrZeroVariance) ||
		errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrInvalidClaimValue)
}

// IsInvalidArgument reports whether err is a caller input error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidRecordCount)
}
