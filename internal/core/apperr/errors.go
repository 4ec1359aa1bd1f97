// Package apperr defines the error taxonomy shared by the validation,
// rule and service layers. Every error carries the request field (or rule)
// it concerns and a client-facing message; the transport layer renders the
// message into the error payload without inspecting the kind.
package apperr

import "fmt"

// =============================================================================
// Error Kinds
// =============================================================================

// ValidationError reports a missing, empty or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an identifier that does not resolve to a record,
// or a delete that affected zero rows.
type NotFoundError struct {
	Field   string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError reports a duplicate business key.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// RuleViolationError reports a rejected temporal business rule.
type RuleViolationError struct {
	Rule    string
	Message string
}

func (e *RuleViolationError) Error() string {
	return e.Message
}

// PersistenceError wraps an unexpected backing-store failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// =============================================================================
// Constructors
// =============================================================================

// Required builds the validation error for an empty required field.
func Required(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: field + " should not be empty.",
	}
}

// BadFormat builds the validation error for a value that does not match the
// expected date or timestamp layout.
func BadFormat(field, layout string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s should be in %s format.", field, layout),
	}
}

// NotFound builds a not-found error for a reference field.
func NotFound(field, message string) *NotFoundError {
	return &NotFoundError{Field: field, Message: message}
}

// Conflict builds a duplicate business-key error.
func Conflict(field, message string) *ConflictError {
	return &ConflictError{Field: field, Message: message}
}

// Rule builds a temporal rule violation.
func Rule(rule, message string) *RuleViolationError {
	return &RuleViolationError{Rule: rule, Message: message}
}

// Persistence wraps an unexpected store failure.
func Persistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
