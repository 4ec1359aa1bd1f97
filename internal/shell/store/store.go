package store

import (
	"context"

	"github.com/wrkhours/timecard/internal/core/domain"
)

// =============================================================================
// Store Interface
// =============================================================================

// Store defines the persistence interface for timecard-tracker entities.
// Get operations return ErrNotFound (wrapped) when no record matches;
// delete operations return the number of rows removed so callers can
// distinguish "deleted" from "was never there".
type Store interface {
	// Department operations. Departments are scoped by company.
	GetDepartment(ctx context.Context, company string, deptID int) (*domain.Department, error)
	GetAllDepartments(ctx context.Context, company string) ([]domain.Department, error)
	GetDepartmentByNo(ctx context.Context, company, deptNo string) (*domain.Department, error)
	InsertDepartment(ctx context.Context, dept *domain.Department) error
	UpdateDepartment(ctx context.Context, dept *domain.Department) error
	DeleteDepartment(ctx context.Context, company string, deptID int) (int, error)

	// Employee operations. The company scope is reached through the
	// owning department.
	GetEmployee(ctx context.Context, empID int) (*domain.Employee, error)
	GetAllEmployees(ctx context.Context, company string) ([]domain.Employee, error)
	GetEmployeeByNo(ctx context.Context, company, empNo string) (*domain.Employee, error)
	CountEmployees(ctx context.Context, company string) (int, error)
	InsertEmployee(ctx context.Context, emp *domain.Employee) error
	UpdateEmployee(ctx context.Context, emp *domain.Employee) error
	DeleteEmployee(ctx context.Context, empID int) (int, error)

	// Timecard operations.
	GetTimecard(ctx context.Context, timecardID int) (*domain.Timecard, error)
	GetAllTimecards(ctx context.Context, empID int) ([]domain.Timecard, error)
	InsertTimecard(ctx context.Context, tc *domain.Timecard) error
	UpdateTimecard(ctx context.Context, tc *domain.Timecard) error
	DeleteTimecard(ctx context.Context, timecardID int) (int, error)

	// Transaction support. The callback receives a Store whose operations
	// run inside one transaction; returning an error rolls everything back.
	WithTx(ctx context.Context, fn func(Store) error) error

	// Lifecycle
	Close() error
}
