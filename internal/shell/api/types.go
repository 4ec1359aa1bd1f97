package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wrkhours/timecard/internal/core/apperr"
)

// =============================================================================
// Request Types
// =============================================================================

// DepartmentRequest is the JSON body for department creation.
type DepartmentRequest struct {
	DeptID   int    `json:"dept_id,omitempty"`
	Company  string `json:"company"`
	DeptName string `json:"dept_name"`
	DeptNo   string `json:"dept_no"`
	Location string `json:"location"`
}

// EmployeeRequest is the JSON body for employee creation. Dates travel as
// strings and are parsed downstream so a malformed value yields the format
// error instead of a decode failure.
type EmployeeRequest struct {
	EmpID    int     `json:"emp_id,omitempty"`
	Company  string  `json:"company,omitempty"`
	EmpName  string  `json:"emp_name"`
	EmpNo    string  `json:"emp_no"`
	HireDate string  `json:"hire_date"`
	Job      string  `json:"job"`
	Salary   float64 `json:"salary"`
	DeptID   int     `json:"dept_id"`
	MngID    int     `json:"mng_id,omitempty"`
}

// TimecardRequest is the JSON body for timecard creation.
type TimecardRequest struct {
	TimecardID int    `json:"timecard_id,omitempty"`
	EmpID      int    `json:"emp_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// =============================================================================
// Response Writers
// =============================================================================

// Every response is HTTP 200; clients discriminate on the payload shape:
// an entity or list on success, {"success": msg} for deletes, and
// {"error": msg} for any failure. Only an encoding breakdown after the
// header is written escapes this contract.

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(body)
}

// writeEntity writes an entity or list payload.
func writeEntity(w http.ResponseWriter, entity any) {
	writeJSON(w, entity)
}

// writeSuccess writes a {"success": msg} payload.
func writeSuccess(w http.ResponseWriter, msg string) {
	writeJSON(w, map[string]string{"success": msg})
}

// writeError maps an operation error onto the {"error": msg} payload.
// Backing-store failures keep their detail out of the response body.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var (
		vErr *apperr.ValidationError
		nErr *apperr.NotFoundError
		cErr *apperr.ConflictError
		rErr *apperr.RuleViolationError
		pErr *apperr.PersistenceError
	)
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, map[string]string{"error": vErr.Message})
	case errors.As(err, &nErr):
		writeJSON(w, map[string]string{"error": nErr.Message})
	case errors.As(err, &cErr):
		writeJSON(w, map[string]string{"error": cErr.Message})
	case errors.As(err, &rErr):
		writeJSON(w, map[string]string{"error": rErr.Message})
	case errors.As(err, &pErr):
		logger.Error("operation failed", "op", pErr.Op, "error", pErr.Err)
		writeJSON(w, map[string]string{"error": "Internal error processing the request."})
	default:
		logger.Error("operation failed", "error", err)
		writeJSON(w, map[string]string{"error": "Internal error processing the request."})
	}
}
