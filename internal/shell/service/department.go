package service

import (
	"context"
	"fmt"

	"github.com/wrkhours/timecard/internal/core/apperr"
	"github.com/wrkhours/timecard/internal/core/domain"
	"github.com/wrkhours/timecard/internal/core/validation"
	"github.com/wrkhours/timecard/internal/shell/store"
)

// =============================================================================
// Department Operations
// =============================================================================

// GetDepartment returns one department in the company scope.
func (s *Service) GetDepartment(ctx context.Context, company string, deptID int) (*domain.Department, error) {
	if err := validation.Company(company); err != nil {
		return nil, err
	}
	if err := validation.ID("dept_id", deptID); err != nil {
		return nil, err
	}

	dept, err := s.store.GetDepartment(ctx, company, deptID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("dept_id", msgNoRecord)
		}
		return nil, storeFailure("GetDepartment", err)
	}
	return dept, nil
}

// ListDepartments returns every department of the company. An empty result
// is reported as not found, matching the original service.
func (s *Service) ListDepartments(ctx context.Context, company string) ([]domain.Department, error) {
	if err := validation.Company(company); err != nil {
		return nil, err
	}

	depts, err := s.store.GetAllDepartments(ctx, company)
	if err != nil {
		return nil, storeFailure("ListDepartments", err)
	}
	if len(depts) == 0 {
		return nil, apperr.NotFound("company", msgNoRecord)
	}
	return depts, nil
}

// CreateDepartment validates and inserts a department, enforcing dept_no
// uniqueness within the company.
func (s *Service) CreateDepartment(ctx context.Context, in validation.DepartmentInput) (*domain.Department, error) {
	if err := validation.DepartmentInsert(in); err != nil {
		return nil, err
	}

	if err := s.checkDeptNoUnique(ctx, in.Company, in.DeptNo); err != nil {
		return nil, err
	}

	dept := &domain.Department{
		Company:  in.Company,
		DeptName: in.DeptName,
		DeptNo:   in.DeptNo,
		Location: in.Location,
	}
	if err := s.store.InsertDepartment(ctx, dept); err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.Conflict("dept_no", "Duplicate  dept no. found")
		}
		return nil, storeFailure("CreateDepartment", err)
	}
	return dept, nil
}

// UpdateDepartment validates and updates a department. The dept_no
// duplicate scan runs before the existence check and does not exempt the
// target record itself, matching the original service.
func (s *Service) UpdateDepartment(ctx context.Context, in validation.DepartmentInput) (*domain.Department, error) {
	if err := validation.DepartmentUpdate(in); err != nil {
		return nil, err
	}

	if err := s.checkDeptNoUnique(ctx, in.Company, in.DeptNo); err != nil {
		return nil, err
	}

	dept, err := s.store.GetDepartment(ctx, in.Company, in.DeptID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("dept_id", "No matching dept_id found")
		}
		return nil, storeFailure("UpdateDepartment", err)
	}

	dept.Company = in.Company
	dept.DeptName = in.DeptName
	dept.DeptNo = in.DeptNo
	dept.Location = in.Location

	if err := s.store.UpdateDepartment(ctx, dept); err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.Conflict("dept_no", "Duplicate  dept no. found")
		}
		return nil, storeFailure("UpdateDepartment", err)
	}
	return dept, nil
}

// DeleteDepartment removes a department together with its employees and
// their timecards, all-or-nothing. The department delete itself is
// attempted even when no employee matched; zero rows there means the
// department never existed.
func (s *Service) DeleteDepartment(ctx context.Context, company string, deptID int) (string, error) {
	if err := validation.Company(company); err != nil {
		return "", err
	}
	if err := validation.ID("dept_id", deptID); err != nil {
		return "", err
	}

	var removed int
	err := s.store.WithTx(ctx, func(tx store.Store) error {
		emps, err := tx.GetAllEmployees(ctx, company)
		if err != nil {
			return err
		}
		for _, emp := range emps {
			if emp.DeptID != deptID {
				continue
			}
			if _, err := deleteEmployeeCascade(ctx, tx, emp.ID); err != nil {
				return err
			}
		}

		rows, err := tx.DeleteDepartment(ctx, company, deptID)
		if err != nil {
			return err
		}
		removed = rows
		return nil
	})
	if err != nil {
		return "", storeFailure("DeleteDepartment", err)
	}

	if removed == 0 {
		return "", apperr.NotFound("dept_id",
			fmt.Sprintf("Department %d from %s does not exist.", deptID, company))
	}

	s.logger.Info("department deleted", "company", company, "dept_id", deptID)
	return fmt.Sprintf("Department %d from %s deleted.", deptID, company), nil
}

// checkDeptNoUnique rejects a dept_no already present in the company. The
// double space in the message is part of the wire contract.
func (s *Service) checkDeptNoUnique(ctx context.Context, company, deptNo string) error {
	_, err := s.store.GetDepartmentByNo(ctx, company, deptNo)
	if err == nil {
		return apperr.Conflict("dept_no", "Duplicate  dept no. found")
	}
	if !isNotFound(err) {
		return storeFailure("checkDeptNoUnique", err)
	}
	return nil
}
