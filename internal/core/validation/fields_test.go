package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrkhours/timecard/internal/core/apperr"
)

func validationMsg(t *testing.T, err error) string {
	t.Helper()
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr.Message
}

// =============================================================================
// Primitive Check Tests
// =============================================================================

func TestNonEmpty_RejectsBlank(t *testing.T) {
	assert.NoError(t, NonEmpty("company", "acme"))

	err := NonEmpty("company", "   ")
	assert.Equal(t, "company should not be empty.", validationMsg(t, err))
}

func TestID_ZeroMeansAbsent(t *testing.T) {
	assert.NoError(t, ID("dept_id", 1))

	err := ID("dept_id", 0)
	assert.Equal(t, "dept_id should not be empty.", validationMsg(t, err))
}

func TestDateString_Pattern(t *testing.T) {
	assert.NoError(t, DateString("hire_date", "2026-03-02"))

	for _, bad := range []string{"", "02-03-2026", "2026-3-2", "2026-03-02 09:00:00"} {
		err := DateString("hire_date", bad)
		assert.Equal(t, "hire_date should be in yyyy-MM-dd format.", validationMsg(t, err))
	}
}

func TestTimestampString_Pattern(t *testing.T) {
	assert.NoError(t, TimestampString("start_time", "2026-03-02 09:00:00"))

	for _, bad := range []string{"", "2026-03-02", "2026-03-02T09:00:00", "09:00:00"} {
		err := TimestampString("start_time", bad)
		assert.Equal(t, "start_time should be in yyyy-MM-dd HH:mm:ss format.", validationMsg(t, err))
	}
}

// =============================================================================
// Department Checklist Tests
// =============================================================================

func TestDepartmentInsert_Valid(t *testing.T) {
	err := DepartmentInsert(DepartmentInput{
		Company:  "acme",
		DeptName: "Engineering",
		DeptNo:   "acme-d1",
		Location: "NYC",
	})
	assert.NoError(t, err)
}

func TestDepartmentInsert_StopsAtFirstViolation(t *testing.T) {
	// Both company and location are empty; only company is reported.
	err := DepartmentInsert(DepartmentInput{DeptName: "Engineering", DeptNo: "d1"})
	assert.Equal(t, "company should not be empty.", validationMsg(t, err))
}

func TestDepartmentUpdate_RequiresDeptID(t *testing.T) {
	err := DepartmentUpdate(DepartmentInput{
		Company:  "acme",
		DeptName: "Engineering",
		DeptNo:   "acme-d1",
		Location: "NYC",
	})
	assert.Equal(t, "dept_id should not be empty.", validationMsg(t, err))
}

// =============================================================================
// Employee Checklist Tests
// =============================================================================

func validEmployee() EmployeeInput {
	return EmployeeInput{
		EmpID:    1,
		EmpName:  "Jane Doe",
		EmpNo:    "acme-e1",
		HireDate: "2026-02-27",
		Job:      "Engineer",
		Salary:   90000,
		DeptID:   1,
	}
}

func TestEmployeeInsert_Valid(t *testing.T) {
	assert.NoError(t, EmployeeInsert(validEmployee()))
}

func TestEmployeeInsert_HireDateCheckedFirst(t *testing.T) {
	// Even with every other field missing, the hire_date format is the
	// first reported violation.
	err := EmployeeInsert(EmployeeInput{HireDate: "27-02-2026"})
	assert.Equal(t, "hire_date should be in yyyy-MM-dd format.", validationMsg(t, err))
}

func TestEmployeeInsert_ZeroSalary(t *testing.T) {
	in := validEmployee()
	in.Salary = 0

	err := EmployeeInsert(in)
	assert.Equal(t, "salary should not be empty.", validationMsg(t, err))
}

func TestEmployeeUpdate_ManagerCannotBeSelf(t *testing.T) {
	in := validEmployee()
	in.MngID = in.EmpID

	err := EmployeeUpdate(in)
	assert.Equal(t, "mng_id should be different than the emp_id.", validationMsg(t, err))
}

func TestEmployeeUpdate_ZeroManagerAllowed(t *testing.T) {
	in := validEmployee()
	in.MngID = 0

	assert.NoError(t, EmployeeUpdate(in))
}

func TestEmployeeUpdate_HireDateMessageDropsFormatWord(t *testing.T) {
	// The update path's hire_date message ends right after the pattern,
	// unlike the insert path's "... format." wording.
	in := validEmployee()
	in.HireDate = "27-02-2026"

	err := EmployeeUpdate(in)
	assert.Equal(t, "hire_date should be in yyyy-MM-dd.", validationMsg(t, err))
}

func TestEmployeeUpdate_RequiresEmpID(t *testing.T) {
	in := validEmployee()
	in.EmpID = 0

	err := EmployeeUpdate(in)
	assert.Equal(t, "emp_id should not be empty.", validationMsg(t, err))
}

// =============================================================================
// Timecard Checklist Tests
// =============================================================================

func TestTimecardInsert_Valid(t *testing.T) {
	err := TimecardInsert(TimecardInput{
		EmpID:     1,
		StartTime: "2026-03-02 09:00:00",
		EndTime:   "2026-03-02 17:00:00",
	})
	assert.NoError(t, err)
}

func TestTimecardInsert_StartBeforeEnd(t *testing.T) {
	// Field order: the start timestamp is reported before the end and
	// emp_id, under the wire label start_date.
	err := TimecardInsert(TimecardInput{EndTime: "2026-03-02 17:00:00"})
	assert.Equal(t, "start_date should be in yyyy-MM-dd HH:mm:ss format.", validationMsg(t, err))
}

func TestTimecardUpdate_RequiresTimecardID(t *testing.T) {
	err := TimecardUpdate(TimecardInput{
		EmpID:     1,
		StartTime: "2026-03-02 09:00:00",
		EndTime:   "2026-03-02 17:00:00",
	})
	assert.Equal(t, "timecard_id should not be empty.", validationMsg(t, err))
}
