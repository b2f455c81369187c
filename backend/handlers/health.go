// ABOUTME: HTTP handlers for health and preset catalogue endpoints
// ABOUTME: Provides API status and the presets new tables are seeded from

package handlers

import (
	"net/http"
	"time"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
)

// Health returns API status with the live session and preset counts.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	}
	if h.sessions != nil {
		resp.ActiveSessions = h.sessions.Count()
	}
	if h.catalog != nil {
		resp.PresetCount = h.catalog.Len()
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// ListPresets returns the preset scenarios.
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets := []models.Preset{}
	if h.catalog != nil {
		presets = h.catalog.Presets()
	}
	h.writeJSON(w, http.StatusOK, presets)
}
