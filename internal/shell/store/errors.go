// Package store provides persistence for departments, employees and
// timecards.
package store

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when a unique constraint is violated
	// (dept_no or the one-timecard-per-day index).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrConnectionFailed is returned when the database connection fails.
	ErrConnectionFailed = errors.New("database connection failed")

	// ErrMigrationFailed is returned when database migration fails.
	ErrMigrationFailed = errors.New("database migration failed")

	// ErrTxFailed is returned when a transaction operation fails.
	ErrTxFailed = errors.New("transaction failed")
)

// StoreError wraps errors with operation context.
type StoreError struct {
	Op      string // Operation that failed (e.g., "InsertEmployee")
	Entity  string // Entity type (e.g., "employee")
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Entity, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(op, entity, message string, err error) *StoreError {
	return &StoreError{
		Op:      op,
		Entity:  entity,
		Message: message,
		Err:     err,
	}
}
