// Package service implements the operation engine behind every endpoint:
// field validation, referential-integrity checks, temporal business rules,
// and cascade deletion, in that order. It is the only layer that talks to
// the store on behalf of a request.
package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/wrkhours/timecard/internal/core/apperr"
	"github.com/wrkhours/timecard/internal/shell/store"
)

// Service executes validated operations against the store. It holds no
// per-request state; the store handle is shared and safe for concurrent
// use, so one Service serves all requests.
type Service struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Service backed by the given store.
func New(st store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the time source. Tests use this to pin "now".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Messages shared by read operations.
const msgNoRecord = "No record found for the request."

// isNotFound reports whether a store error means "no such record" as
// opposed to a backing-store failure.
func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}

// isDuplicateKey reports whether a store error is a unique-constraint hit.
func isDuplicateKey(err error) bool {
	return errors.Is(err, store.ErrDuplicateKey)
}

// storeFailure wraps an unexpected store error into the taxonomy.
func storeFailure(op string, err error) error {
	return apperr.Persistence(op, err)
}
