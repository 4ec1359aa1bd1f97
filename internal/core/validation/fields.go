package validation

import (
	"regexp"
	"strings"

	"github.com/wrkhours/timecard/internal/core/apperr"
	"github.com/wrkhours/timecard/internal/core/domain"
)

// Strict wire patterns, checked before any time parsing is attempted.
var (
	datePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
)

// =============================================================================
// Primitive Checks
// =============================================================================

// NonEmpty rejects a required string that is empty after trimming.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.Required(field)
	}
	return nil
}

// ID rejects a required numeric identifier of zero. Zero means "absent";
// real ids start at 1, so this can never mask a legitimate record.
func ID(field string, id int) error {
	if id == 0 {
		return apperr.Required(field)
	}
	return nil
}

// Amount rejects a required numeric amount of zero.
func Amount(field string, v float64) error {
	if v == 0.0 {
		return apperr.Required(field)
	}
	return nil
}

// DateString rejects an empty or malformed yyyy-MM-dd value.
func DateString(field, value string) error {
	if strings.TrimSpace(value) == "" || !datePattern.MatchString(value) {
		return apperr.BadFormat(field, domain.DateLayoutName)
	}
	return nil
}

// TimestampString rejects an empty or malformed yyyy-MM-dd HH:mm:ss value.
func TimestampString(field, value string) error {
	if strings.TrimSpace(value) == "" || !timestampPattern.MatchString(value) {
		return apperr.BadFormat(field, domain.TimestampLayoutName)
	}
	return nil
}

// =============================================================================
// Request Inputs
// =============================================================================

// DepartmentInput carries the raw fields of a department mutation.
type DepartmentInput struct {
	DeptID   int
	Company  string
	DeptName string
	DeptNo   string
	Location string
}

// EmployeeInput carries the raw fields of an employee mutation. HireDate
// stays a string until its pattern has been checked.
type EmployeeInput struct {
	EmpID    int
	EmpName  string
	EmpNo    string
	HireDate string
	Job      string
	Salary   float64
	DeptID   int
	MngID    int
}

// TimecardInput carries the raw fields of a timecard mutation. StartTime
// and EndTime stay strings until their patterns have been checked.
type TimecardInput struct {
	TimecardID int
	EmpID      int
	StartTime  string
	EndTime    string
}

// =============================================================================
// Per-Operation Checklists
// =============================================================================
//
// Each checklist runs in a fixed order and returns the first violation,
// matching the original service's sequential field checks.

// Company validates the scoping key supplied on query-driven operations.
func Company(company string) error {
	return NonEmpty("company", company)
}

// DepartmentInsert validates the fields of a department create.
func DepartmentInsert(in DepartmentInput) error {
	if err := NonEmpty("company", in.Company); err != nil {
		return err
	}
	if err := NonEmpty("dept_name", in.DeptName); err != nil {
		return err
	}
	if err := NonEmpty("dept_no", in.DeptNo); err != nil {
		return err
	}
	return NonEmpty("location", in.Location)
}

// DepartmentUpdate validates the fields of a department update.
func DepartmentUpdate(in DepartmentInput) error {
	if err := ID("dept_id", in.DeptID); err != nil {
		return err
	}
	return DepartmentInsert(in)
}

// EmployeeInsert validates the fields of an employee create. The hire_date
// pattern is checked first, before the remaining presence checks.
func EmployeeInsert(in EmployeeInput) error {
	if err := DateString("hire_date", in.HireDate); err != nil {
		return err
	}
	if err := NonEmpty("emp_name", in.EmpName); err != nil {
		return err
	}
	if err := NonEmpty("emp_no", in.EmpNo); err != nil {
		return err
	}
	if err := NonEmpty("job", in.Job); err != nil {
		return err
	}
	if err := Amount("salary", in.Salary); err != nil {
		return err
	}
	return ID("dept_id", in.DeptID)
}

// EmployeeUpdate validates the fields of an employee update, including the
// manager-equals-self rule.
func EmployeeUpdate(in EmployeeInput) error {
	if err := ID("emp_id", in.EmpID); err != nil {
		return err
	}
	if err := NonEmpty("emp_name", in.EmpName); err != nil {
		return err
	}
	if err := NonEmpty("emp_no", in.EmpNo); err != nil {
		return err
	}
	// The update message drops the word "format": "hire_date should be in
	// yyyy-MM-dd." Clients match on it, so it stays distinct from the
	// insert-side DateString message.
	if strings.TrimSpace(in.HireDate) == "" || !datePattern.MatchString(in.HireDate) {
		return &apperr.ValidationError{
			Field:   "hire_date",
			Message: "hire_date should be in " + domain.DateLayoutName + ".",
		}
	}
	if err := NonEmpty("job", in.Job); err != nil {
		return err
	}
	if err := Amount("salary", in.Salary); err != nil {
		return err
	}
	if err := ID("dept_id", in.DeptID); err != nil {
		return err
	}
	if in.MngID == in.EmpID {
		return &apperr.ValidationError{
			Field:   "mng_id",
			Message: "mng_id should be different than the emp_id.",
		}
	}
	return nil
}

// TimecardInsert validates the fields of a timecard create. The format
// errors label the fields start_date/end_date; the wire contract has
// always used the date names.
func TimecardInsert(in TimecardInput) error {
	if err := TimestampString("start_date", in.StartTime); err != nil {
		return err
	}
	if err := TimestampString("end_date", in.EndTime); err != nil {
		return err
	}
	return ID("emp_id", in.EmpID)
}

// TimecardUpdate validates the fields of a timecard update.
func TimecardUpdate(in TimecardInput) error {
	if err := ID("timecard_id", in.TimecardID); err != nil {
		return err
	}
	if err := ID("emp_id", in.EmpID); err != nil {
		return err
	}
	if err := TimestampString("start_date", in.StartTime); err != nil {
		return err
	}
	return TimestampString("end_date", in.EndTime)
}
