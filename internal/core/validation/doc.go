// Package validation implements the field validator: ordered presence and
// format checks over raw request fields, evaluated stop-at-first-error.
// All functions are pure; date strings are pattern-checked here and parsed
// later by the caller.
package validation
