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
// Department Handlers
// =============================================================================

// DepartmentHandlers serves the department endpoints.
type DepartmentHandlers struct {
	svc            *service.Service
	logger         *slog.Logger
	defaultCompany string
}

// NewDepartmentHandlers creates department handlers.
func NewDepartmentHandlers(svc *service.Service, logger *slog.Logger, defaultCompany string) *DepartmentHandlers {
	return &DepartmentHandlers{svc: svc, logger: logger, defaultCompany: defaultCompany}
}

// RegisterRoutes mounts the department endpoints on the router.
func (h *DepartmentHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/department", h.Get).Methods("GET")
	router.HandleFunc("/departments", h.List).Methods("GET")
	router.HandleFunc("/department", h.Create).Methods("POST")
	router.HandleFunc("/department", h.Update).Methods("PUT")
	router.HandleFunc("/department", h.Delete).Methods("DELETE")
}

func (h *DepartmentHandlers) company(raw string) string {
	if raw == "" {
		return h.defaultCompany
	}
	return raw
}

// Get handles GET /CompanyServices/department?company=&dept_id=.
func (h *DepartmentHandlers) Get(w http.ResponseWriter, r *http.Request) {
	company := h.company(r.URL.Query().Get("company"))
	dept, err := h.svc.GetDepartment(r.Context(), company, queryInt(r, "dept_id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeEntity(w, dept)
}

// List handles GET /CompanyServices/departments?company=.
func (h *DepartmentHandlers) List(w http.ResponseWriter, r *http.Request) {
	company := h.company(r.URL.Query().Get("company"))
	depts, err := h.svc.ListDepartments(r.Context(), company)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeEntity(w, depts)
}

// Create handles POST /CompanyServices/department with a JSON body.
func (h *DepartmentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, map[string]string{"error": "Invalid request body."})
		return
	}

	dept, err := h.svc.CreateDepartment(r.Context(), validation.DepartmentInput{
		Company:  h.company(req.Company),
		DeptName: req.DeptName,
		DeptNo:   req.DeptNo,
		Location: req.Location,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeEntity(w, dept)
}

// Update handles PUT /CompanyServices/department with a form-encoded body.
func (h *DepartmentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, map[string]string{"error": "Invalid request body."})
		return
	}

	dept, err := h.svc.UpdateDepartment(r.Context(), validation.DepartmentInput{
		DeptID:   formInt(r, "dept_id"),
		Company:  h.company(r.FormValue("company")),
		DeptName: r.FormValue("dept_name"),
		DeptNo:   r.FormValue("dept_no"),
		Location: r.FormValue("location"),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeEntity(w, dept)
}

// Delete handles DELETE /CompanyServices/department?company=&dept_id=.
func (h *DepartmentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	company := h.company(r.URL.Query().Get("company"))
	msg, err := h.svc.DeleteDepartment(r.Context(), company, queryInt(r, "dept_id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeSuccess(w, msg)
}
