// ABOUTME: HTTP handlers for the VDB benchmark API
// ABOUTME: Shared handler state, JSON helpers, and error-to-status mapping

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chrisspier/vdb-benchmark-app/backend/config"
	"github.com/chrisspier/vdb-benchmark-app/backend/metrics"
	"github.com/chrisspier/vdb-benchmark-app/backend/middleware"
	"github.com/chrisspier/vdb-benchmark-app/backend/models"
	"github.com/chrisspier/vdb-benchmark-app/backend/services"
)

// maxRequestBodySize limits JSON request bodies to 1MB
const maxRequestBodySize = 1 << 20

type Handler struct {
	cfg      *config.Config
	sessions *services.SessionService
	catalog  *services.PresetCatalog
	metrics  *metrics.Metrics
}

func NewHandler(cfg *config.Config, sessions *services.SessionService, catalog *services.PresetCatalog, m *metrics.Metrics) *Handler {
	if m == nil {
		m = metrics.New()
	}
	return &Handler{
		cfg:      cfg,
		sessions: sessions,
		catalog:  catalog,
		metrics:  m,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeErrorDetails(w, message, "", code)
}

func (h *Handler) writeErrorDetails(w http.ResponseWriter, message, details string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error:   message,
		Details: details,
		Code:    code,
	})
}

// writeServiceError maps domain errors to HTTP statuses
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		h.writeErrorDetails(w, "Invalid scenario input", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, models.ErrIndexOutOfRange):
		h.writeErrorDetails(w, "Scenario not found", err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrSessionNotFound):
		h.writeError(w, "Session expired", http.StatusNotFound)
	default:
		slog.Error("Request failed", "error", err, "request_id", middleware.RequestID(r))
		h.writeError(w, "Internal server error", http.StatusInternalServerError)
	}
}

// decodeJSON reads a size-limited JSON body into v, writing a 400 on failure
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return false
		}
		h.writeErrorDetails(w, "Invalid JSON", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
