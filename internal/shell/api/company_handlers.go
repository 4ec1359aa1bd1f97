package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wrkhours/timecard/internal/shell/service"
)

// =============================================================================
// Company Handlers
// =============================================================================

// CompanyHandlers serves the company-wide endpoints.
type CompanyHandlers struct {
	svc            *service.Service
	logger         *slog.Logger
	defaultCompany string
}

// NewCompanyHandlers creates company handlers.
func NewCompanyHandlers(svc *service.Service, logger *slog.Logger, defaultCompany string) *CompanyHandlers {
	return &CompanyHandlers{svc: svc, logger: logger, defaultCompany: defaultCompany}
}

// RegisterRoutes mounts the company endpoints on the router.
func (h *CompanyHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/company", h.Delete).Methods("DELETE")
}

// Delete handles DELETE /CompanyServices/company?company=, purging every
// record in the company scope.
func (h *CompanyHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("company")
	if company == "" {
		company = h.defaultCompany
	}
	msg, err := h.svc.DeleteCompany(r.Context(), company)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeSuccess(w, msg)
}
