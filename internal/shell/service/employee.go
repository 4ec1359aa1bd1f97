package service

import (
	"context"
	"fmt"

	"github.com/wrkhours/timecard/internal/core/apperr"
	"github.com/wrkhours/timecard/internal/core/domain"
	"github.com/wrkhours/timecard/internal/core/rules"
	"github.com/wrkhours/timecard/internal/core/validation"
	"github.com/wrkhours/timecard/internal/shell/store"
)

// =============================================================================
// Employee Operations
// =============================================================================

// GetEmployee returns one employee by id.
func (s *Service) GetEmployee(ctx context.Context, empID int) (*domain.Employee, error) {
	if err := validation.ID("emp_id", empID); err != nil {
		return nil, err
	}

	emp, err := s.store.GetEmployee(ctx, empID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("emp_id", msgNoRecord)
		}
		return nil, storeFailure("GetEmployee", err)
	}
	return emp, nil
}

// ListEmployees returns every employee of the company. An empty result is
// reported as not found, matching the original service.
func (s *Service) ListEmployees(ctx context.Context, company string) ([]domain.Employee, error) {
	if err := validation.Company(company); err != nil {
		return nil, err
	}

	emps, err := s.store.GetAllEmployees(ctx, company)
	if err != nil {
		return nil, storeFailure("ListEmployees", err)
	}
	if len(emps) == 0 {
		return nil, apperr.NotFound("company", msgNoRecord)
	}
	return emps, nil
}

// CreateEmployee validates and inserts an employee. Reference checks run in
// a fixed order: department, then - when the company already has employees -
// manager resolution and emp_no uniqueness; the hire-date rules run last.
// While the employee table is empty the manager check is skipped so the
// first employee can be created without one.
func (s *Service) CreateEmployee(ctx context.Context, company string, in validation.EmployeeInput) (*domain.Employee, error) {
	if err := validation.EmployeeInsert(in); err != nil {
		return nil, err
	}
	hireDate, err := domain.ParseDate(in.HireDate)
	if err != nil {
		return nil, apperr.BadFormat("hire_date", domain.DateLayoutName)
	}

	if err := s.checkEmployeeRefs(ctx, company, in, false); err != nil {
		return nil, err
	}

	if err := rules.CheckHireDate(s.now(), hireDate.Time); err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		EmpName:  in.EmpName,
		EmpNo:    in.EmpNo,
		HireDate: hireDate,
		Job:      in.Job,
		Salary:   in.Salary,
		DeptID:   in.DeptID,
		MngID:    in.MngID,
	}
	if err := s.store.InsertEmployee(ctx, emp); err != nil {
		return nil, storeFailure("CreateEmployee", err)
	}
	return emp, nil
}

// UpdateEmployee validates and updates an employee. The emp_no duplicate
// scan does not exempt the target record, matching the original service.
func (s *Service) UpdateEmployee(ctx context.Context, company string, in validation.EmployeeInput) (*domain.Employee, error) {
	if err := validation.EmployeeUpdate(in); err != nil {
		return nil, err
	}
	hireDate, err := domain.ParseDate(in.HireDate)
	if err != nil {
		return nil, &apperr.ValidationError{
			Field:   "hire_date",
			Message: "hire_date should be in " + domain.DateLayoutName + ".",
		}
	}

	if err := s.checkEmployeeRefs(ctx, company, in, true); err != nil {
		return nil, err
	}

	if err := rules.CheckHireDate(s.now(), hireDate.Time); err != nil {
		return nil, err
	}

	emp, err := s.store.GetEmployee(ctx, in.EmpID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("emp_id", "No matching employee found for emp_Id")
		}
		return nil, storeFailure("UpdateEmployee", err)
	}

	emp.EmpName = in.EmpName
	emp.EmpNo = in.EmpNo
	emp.HireDate = hireDate
	emp.Job = in.Job
	emp.Salary = in.Salary
	emp.DeptID = in.DeptID
	emp.MngID = in.MngID

	if err := s.store.UpdateEmployee(ctx, emp); err != nil {
		return nil, storeFailure("UpdateEmployee", err)
	}
	return emp, nil
}

// DeleteEmployee removes an employee together with its timecards,
// all-or-nothing. Zero rows on the terminal delete means the employee
// never existed.
func (s *Service) DeleteEmployee(ctx context.Context, empID int) (string, error) {
	if err := validation.ID("emp_id", empID); err != nil {
		return "", err
	}

	var removed int
	err := s.store.WithTx(ctx, func(tx store.Store) error {
		if err := deleteTimecardsFor(ctx, tx, empID); err != nil {
			return err
		}
		rows, err := tx.DeleteEmployee(ctx, empID)
		if err != nil {
			return err
		}
		removed = rows
		return nil
	})
	if err != nil {
		return "", storeFailure("DeleteEmployee", err)
	}

	if removed == 0 {
		return "", apperr.NotFound("emp_id",
			fmt.Sprintf("Employee %d does not exist.", empID))
	}

	s.logger.Info("employee deleted", "emp_id", empID)
	return fmt.Sprintf("Employee %d deleted.", empID), nil
}

// checkEmployeeRefs runs the referential-integrity chain for an employee
// mutation: department resolution, then manager resolution, target
// existence (update only) and emp_no uniqueness - the latter three only
// when the company already has employees (bootstrap allowance).
func (s *Service) checkEmployeeRefs(ctx context.Context, company string, in validation.EmployeeInput, update bool) error {
	// The capital I in dept_Id (and mng_Id, emp_Id below) is part of the
	// wire contract; the department update path spells it lowercase.
	if _, err := s.store.GetDepartment(ctx, company, in.DeptID); err != nil {
		if isNotFound(err) {
			return apperr.NotFound("dept_id", "No matching dept_Id found")
		}
		return storeFailure("checkEmployeeRefs", err)
	}

	count, err := s.store.CountEmployees(ctx, company)
	if err != nil {
		return storeFailure("checkEmployeeRefs", err)
	}
	if count == 0 {
		return nil
	}

	if in.MngID != 0 {
		if _, err := s.store.GetEmployee(ctx, in.MngID); err != nil {
			if isNotFound(err) {
				return apperr.NotFound("mng_id", "No matching employee found for mng_Id")
			}
			return storeFailure("checkEmployeeRefs", err)
		}
	}

	if update {
		if _, err := s.store.GetEmployee(ctx, in.EmpID); err != nil {
			if isNotFound(err) {
				return apperr.NotFound("emp_id", "No matching employee found for emp_Id")
			}
			return storeFailure("checkEmployeeRefs", err)
		}
	}

	if _, err := s.store.GetEmployeeByNo(ctx, company, in.EmpNo); err == nil {
		return apperr.Conflict("emp_no", "Duplicate emp_no found")
	} else if !isNotFound(err) {
		return storeFailure("checkEmployeeRefs", err)
	}

	return nil
}

// deleteEmployeeCascade removes one employee's timecards and then the
// employee row, inside the caller's transaction. It reports the employee
// rows actually deleted so callers can tell a purge from a no-op.
func deleteEmployeeCascade(ctx context.Context, tx store.Store, empID int) (int, error) {
	if err := deleteTimecardsFor(ctx, tx, empID); err != nil {
		return 0, err
	}
	return tx.DeleteEmployee(ctx, empID)
}

// deleteTimecardsFor removes every timecard owned by the employee.
func deleteTimecardsFor(ctx context.Context, tx store.Store, empID int) error {
	cards, err := tx.GetAllTimecards(ctx, empID)
	if err != nil {
		return err
	}
	for _, tc := range cards {
		if _, err := tx.DeleteTimecard(ctx, tc.ID); err != nil {
			return err
		}
	}
	return nil
}
