// Package api provides the HTTP transport for the timecard service. Every
// endpoint responds 200 and encodes the outcome in the payload shape; see
// types.go for the contract.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/wrkhours/timecard/internal/shell/service"
)

// =============================================================================
// API Setup
// =============================================================================

// APIConfig holds configuration for the API setup.
type APIConfig struct {
	Service *service.Service
	Logger  *slog.Logger

	// DefaultCompany fills the company parameter when a request omits it.
	DefaultCompany string
}

// SetupAPI creates the complete router with all entity endpoints mounted
// under /CompanyServices. Returns an http.Handler that can be used as the
// server's main handler.
func SetupAPI(cfg APIConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	router := mux.NewRouter()
	router.Use(requestIDMiddleware)
	router.Use(recoveryMiddleware(cfg.Logger))

	router.HandleFunc("/health", healthHandler).Methods("GET")

	sub := router.PathPrefix("/CompanyServices").Subrouter()

	NewDepartmentHandlers(cfg.Service, cfg.Logger, cfg.DefaultCompany).RegisterRoutes(sub)
	NewEmployeeHandlers(cfg.Service, cfg.Logger, cfg.DefaultCompany).RegisterRoutes(sub)
	NewTimecardHandlers(cfg.Service, cfg.Logger).RegisterRoutes(sub)
	NewCompanyHandlers(cfg.Service, cfg.Logger, cfg.DefaultCompany).RegisterRoutes(sub)

	return router
}

// =============================================================================
// Middleware
// =============================================================================

// requestIDMiddleware propagates or generates a request ID header.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r)
	})
}

// recoveryMiddleware recovers from panics. A panic is the one case where
// the always-200 contract does not apply.
func recoveryMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal error processing the request.",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// =============================================================================
// Health Handler
// =============================================================================

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
