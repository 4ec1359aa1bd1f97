package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wrkhours/timecard/internal/core/validation"
	"github.com/wrkhours/timecard/internal/shell/service"
)

// =============================================================================
// Employee Handlers
// =============================================================================

// EmployeeHandlers serves the employee endpoints.
type EmployeeHandlers struct {
	svc            *service.Service
	logger         *slog.Logger
	defaultCompany string
}

// NewEmployeeHandlers creates employee handlers.
func NewEmployeeHandlers(svc *service.Service, logger *slog.Logger, defaultCompany string) *EmployeeHandlers {
	return &EmployeeHandlers{svc: svc, logger: logger, defaultCompany: defaultCompany}
}

// RegisterRoutes mounts the employee endpoints on the router.
func (h *EmployeeHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/employee", h.Get).Methods("GET")
	router.HandleFunc("/employees", h.List).Methods("GET")
	router.HandleFunc("/employee", h.Create).Methods("POST")
	router.HandleFunc("/employee", h.Update).Methods("PUT")
	router.HandleFunc("/employee", h.Delete).Methods("DELETE")
}

func (h *EmployeeHandlers) company(raw string) string {
	if raw == "" {
		return h.defaultCompany
	}
	return raw
}

// Get handles GET /CompanyServices/employee?emp_id=.
func (h *EmployeeHandlers) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := h.svc.GetEmployee(r.Context(), queryInt(r, "emp_id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeEntity(w, emp)
}

// List handles GET /CompanyServices/employees?company=.
func (h *EmployeeHandlers) List(w http.ResponseWriter, r *http.Request) {
	company := h.company(r.URL.Query().Get("company"))
	emps, err := h.svc.ListEmployees(r.Context(), company)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeEntity(w, emps)
}

// Create handles POST /CompanyServices/employee with a JSON body.
func (h *EmployeeHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, map[string]string{"error": "Invalid request body."})
		return
	}

	emp, err := h.svc.CreateEmployee(r.Context(), h.company(req.Company), validation.EmployeeInput{
		EmpName:  req.EmpName,
		EmpNo:    req.EmpNo,
		HireDate: req.HireDate,
		Job:      req.Job,
		Salary:   req.Salary,
		DeptID:   req.DeptID,
		MngID:    req.MngID,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeEntity(w, emp)
}

// Update handles PUT /CompanyServices/employee with a form-encoded body.
func (h *EmployeeHandlers) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, map[string]string{"error": "Invalid request body."})
		return
	}

	emp, err := h.svc.UpdateEmployee(r.Context(), h.company(r.FormValue("company")), validation.EmployeeInput{
		EmpID:    formInt(r, "emp_id"),
		EmpName:  r.FormValue("emp_name"),
		EmpNo:    r.FormValue("emp_no"),
		HireDate: r.FormValue("hire_date"),
		Job:      r.FormValue("job"),
		Salary:   formFloat(r, "salary"),
		DeptID:   formInt(r, "dept_id"),
		MngID:    formInt(r, "mng_id"),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeEntity(w, emp)
}

// Delete handles DELETE /CompanyServices/employee?emp_id=.
func (h *EmployeeHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	msg, err := h.svc.DeleteEmployee(r.Context(), queryInt(r, "emp_id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeSuccess(w, msg)
}
