package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrkhours/timecard/internal/core/apperr"
	"github.com/wrkhours/timecard/internal/core/validation"
)

// =============================================================================
// Department Service Tests
// =============================================================================

func TestGetDepartment_EmptyCompany(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetDepartment(context.Background(), "", 1)

	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "company should not be empty.", vErr.Message)
}

func TestGetDepartment_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetDepartment(context.Background(), "acme", 42)

	var nErr *apperr.NotFoundError
	require.ErrorAs(t, err, &nErr)
	assert.Equal(t, "No record found for the request.", nErr.Message)
}

func TestGetDepartment_WrongCompanyScope(t *testing.T) {
	svc, ms := newTestService(t)
	dept := seedDepartment(t, ms, "acme", "acme-d1")

	_, err := svc.GetDepartment(context.Background(), "other", dept.ID)

	var nErr *apperr.NotFoundError
	assert.ErrorAs(t, err, &nErr)
}

func TestListDepartments_EmptyIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListDepartments(context.Background(), "acme")

	var nErr *apperr.NotFoundError
	require.ErrorAs(t, err, &nErr)
	assert.Equal(t, "No record found for the request.", nErr.Message)
}

func TestCreateDepartment_AssignsID(t *testing.T) {
	svc, _ := newTestService(t)

	dept, err := svc.CreateDepartment(context.Background(), validation.DepartmentInput{
		Company:  "acme",
		DeptName: "Engineering",
		DeptNo:   "acme-d1",
		Location: "NYC",
	})
	require.NoError(t, err)
	assert.NotZero(t, dept.ID)
}

func TestCreateDepartment_DuplicateDeptNo(t *testing.T) {
	svc, ms := newTestService(t)
	seedDepartment(t, ms, "acme", "acme-d1")

	_, err := svc.CreateDepartment(context.Background(), validation.DepartmentInput{
		Company:  "acme",
		DeptName: "Sales",
		DeptNo:   "acme-d1",
		Location: "LA",
	})

	var cErr *apperr.ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "Duplicate  dept no. found", cErr.Message)
}

func TestCreateDepartment_SameDeptNoOtherCompany(t *testing.T) {
	svc, ms := newTestService(t)
	seedDepartment(t, ms, "other", "d1")

	_, err := svc.CreateDepartment(context.Background(), validation.DepartmentInput{
		Company:  "acme",
		DeptName: "Engineering",
		DeptNo:   "d1",
		Location: "NYC",
	})
	assert.NoError(t, err)
}

func TestUpdateDepartment_DuplicateCheckRunsBeforeExistence(t *testing.T) {
	// The target dept_id does not exist, but the dept_no is taken: the
	// conflict is reported, not the missing record.
	svc, ms := newTestService(t)
	seedDepartment(t, ms, "acme", "acme-d1")

	_, err := svc.UpdateDepartment(context.Background(), validation.DepartmentInput{
		DeptID:   99,
		Company:  "acme",
		DeptName: "Sales",
		DeptNo:   "acme-d1",
		Location: "LA",
	})

	var cErr *apperr.ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "Duplicate  dept no. found", cErr.Message)
}

func TestUpdateDepartment_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateDepartment(context.Background(), validation.DepartmentInput{
		DeptID:   99,
		Company:  "acme",
		DeptName: "Sales",
		DeptNo:   "acme-d9",
		Location: "LA",
	})

	var nErr *apperr.NotFoundError
	require.ErrorAs(t, err, &nErr)
	assert.Equal(t, "No matching dept_id found", nErr.Message)
}

func TestUpdateDepartment_Applies(t *testing.T) {
	svc, ms := newTestService(t)
	dept := seedDepartment(t, ms, "acme", "acme-d1")

	updated, err := svc.UpdateDepartment(context.Background(), validation.DepartmentInput{
		DeptID:   dept.ID,
		Company:  "acme",
		DeptName: "Platform",
		DeptNo:   "acme-d2",
		Location: "SF",
	})
	require.NoError(t, err)
	assert.Equal(t, "Platform", updated.DeptName)
	assert.Equal(t, "acme-d2", updated.DeptNo)
	assert.Equal(t, "SF", updated.Location)
}

func TestDeleteDepartment_CascadesEmployeesAndTimecards(t *testing.T) {
	svc, ms := newTestService(t)
	dept := seedDepartment(t, ms, "acme", "acme-d1")
	other := seedDepartment(t, ms, "acme", "acme-d2")
	emp := seedEmployee(t, ms, dept.ID, "acme-e1")
	kept := seedEmployee(t, ms, other.ID, "acme-e2")
	seedTimecard(t, ms, emp.ID, testNow.AddDate(0, 0, -3))
	keptCard := seedTimecard(t, ms, kept.ID, testNow.AddDate(0, 0, -3))

	msg, err := svc.DeleteDepartment(context.Background(), "acme", dept.ID)
	require.NoError(t, err)
	assert.Contains(t, msg, "deleted.")

	assert.NotContains(t, ms.depts, dept.ID)
	assert.NotContains(t, ms.emps, emp.ID)
	assert.Contains(t, ms.emps, kept.ID)
	assert.Contains(t, ms.cards, keptCard.ID)
	assert.Len(t, ms.cards, 1)
}

func TestDeleteDepartment_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.DeleteDepartment(context.Background(), "acme", 9)

	var nErr *apperr.NotFoundError
	require.ErrorAs(t, err, &nErr)
	assert.Equal(t, "Department 9 from acme does not exist.", nErr.Message)
}

func TestDeleteDepartment_SuccessMessage(t *testing.T) {
	svc, ms := newTestService(t)
	dept := seedDepartment(t, ms, "acme", "acme-d1")

	msg, err := svc.DeleteDepartment(context.Background(), "acme", dept.ID)
	require.NoError(t, err)
	assert.Equal(t, "Department 1 from acme deleted.", msg)
}
