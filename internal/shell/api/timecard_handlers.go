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
// Timecard Handlers
// =============================================================================

// TimecardHandlers serves the timecard endpoints.
type TimecardHandlers struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewTimecardHandlers creates timecard handlers.
func NewTimecardHandlers(svc *service.Service, logger *slog.Logger) *TimecardHandlers {
	return &TimecardHandlers{svc: svc, logger: logger}
}

// RegisterRoutes mounts the timecard endpoints on the router.
func (h *TimecardHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/timecard", h.Get).Methods("GET")
	router.HandleFunc("/timecards", h.List).Methods("GET")
	router.HandleFunc("/timecard", h.Create).Methods("POST")
	router.HandleFunc("/timecard", h.Update).Methods("PUT")
	router.HandleFunc("/timecard", h.Delete).Methods("DELETE")
}

// Get handles GET /CompanyServices/timecard?timecard_id=.
func (h *TimecardHandlers) Get(w http.ResponseWriter, r *http.Request) {
	tc, err := h.svc.GetTimecard(r.Context(), queryInt(r, "timecard_id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeEntity(w, tc)
}

// List handles GET /CompanyServices/timecards?emp_id=.
func (h *TimecardHandlers) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.ListTimecards(r.Context(), queryInt(r, "emp_id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeEntity(w, cards)
}

// Create handles POST /CompanyServices/timecard with a JSON body.
func (h *TimecardHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req TimecardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, map[string]string{"error": "Invalid request body."})
		return
	}

	tc, err := h.svc.CreateTimecard(r.Context(), validation.TimecardInput{
		EmpID:     req.EmpID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeEntity(w, tc)
}

// Update handles PUT /CompanyServices/timecard with a form-encoded body.
func (h *TimecardHandlers) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, map[string]string{"error": "Invalid request body."})
		return
	}

	tc, err := h.svc.UpdateTimecard(r.Context(), validation.TimecardInput{
		TimecardID: formInt(r, "timecard_id"),
		EmpID:      formInt(r, "emp_id"),
		StartTime:  r.FormValue("start_time"),
		EndTime:    r.FormValue("end_time"),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeEntity(w, tc)
}

// Delete handles DELETE /CompanyServices/timecard?timecard_id=.
func (h *TimecardHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	msg, err := h.svc.DeleteTimecard(r.Context(), queryInt(r, "timecard_id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeSuccess(w, msg)
}
