package service

import (
	"context"

	"github.com/wrkhours/timecard/internal/core/apperr"
	"github.com/wrkhours/timecard/internal/core/validation"
	"github.com/wrkhours/timecard/internal/shell/store"
)

// =============================================================================
// Company Operations
// =============================================================================

// DeleteCompany purges every department, employee and timecard of the
// company, all-or-nothing. A company with nothing to remove is reported as
// not found.
func (s *Service) DeleteCompany(ctx context.Context, company string) (string, error) {
	if err := validation.Company(company); err != nil {
		return "", err
	}

	var removed int
	err := s.store.WithTx(ctx, func(tx store.Store) error {
		emps, err := tx.GetAllEmployees(ctx, company)
		if err != nil {
			return err
		}
		for _, emp := range emps {
			rows, err := deleteEmployeeCascade(ctx, tx, emp.ID)
			if err != nil {
				return err
			}
			removed += rows
		}

		depts, err := tx.GetAllDepartments(ctx, company)
		if err != nil {
			return err
		}
		for _, dept := range depts {
			rows, err := tx.DeleteDepartment(ctx, company, dept.ID)
			if err != nil {
				return err
			}
			removed += rows
		}
		return nil
	})
	if err != nil {
		return "", storeFailure("DeleteCompany", err)
	}

	// The payloads carry the literal word companyName, not the company
	// requested; clients match on the literals.
	if removed == 0 {
		return "", apperr.NotFound("company", "companyName's does not exist.")
	}

	s.logger.Info("company purged", "company", company)
	return "companyName's information deleted.", nil
}
