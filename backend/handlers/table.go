// ABOUTME: HTTP handlers for the session's scenario table and its charts
// ABOUTME: Append, remove-at, and reset go through the session service as pure reducers

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chrisspier/vdb-benchmark-app/backend/metrics"
	"github.com/chrisspier/vdb-benchmark-app/backend/middleware"
	"github.com/chrisspier/vdb-benchmark-app/backend/models"
	"github.com/chrisspier/vdb-benchmark-app/backend/services"
)

// currentTable loads the table for the request's session, writing an error on failure
func (h *Handler) currentTable(w http.ResponseWriter, r *http.Request) (models.TableState, bool) {
	state, err := h.sessions.Get(middleware.SessionID(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return models.TableState{}, false
	}
	return state, true
}

// GetTable returns the session's scenario table.
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	state, ok := h.currentTable(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, state)
}

// AppendScenario computes the posted input and appends it to the session's table.
func (h *Handler) AppendScenario(w http.ResponseWriter, r *http.Request) {
	var input models.ScenarioInput
	if !h.decodeJSON(w, r, &input) {
		return
	}

	var row models.ScenarioRow
	state, err := h.sessions.Update(middleware.SessionID(r), func(s models.TableState) (models.TableState, error) {
		next, appended, err := services.AppendScenario(s, input)
		h.metrics.ObserveCompute(err)
		row = appended
		return next, err
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.metrics.ObserveMutation(metrics.OpAppend)
	slog.Info("Scenario appended", "rows", state.Len(), "request_id", middleware.RequestID(r))
	h.writeJSON(w, http.StatusCreated, models.AppendResult{Row: row, Table: state})
}

// RemoveScenario deletes the row at the {index} path value.
// Removing from an empty table succeeds with a warning.
func (h *Handler) RemoveScenario(w http.ResponseWriter, r *http.Request) {
	index, err := services.ParseRowIndex(r.PathValue("index"))
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var result models.RemoveResult
	_, err = h.sessions.Update(middleware.SessionID(r), func(s models.TableState) (models.TableState, error) {
		next, res, err := services.RemoveScenarioAt(s, index)
		result = res
		return next, err
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if result.Warning != "" {
		h.metrics.ObserveMutation(metrics.OpEmpty)
		slog.Warn("Remove on empty table", "request_id", middleware.RequestID(r))
	} else {
		h.metrics.ObserveMutation(metrics.OpRemove)
		slog.Info("Scenario removed", "index", index, "rows", result.Table.Len(), "request_id", middleware.RequestID(r))
	}
	h.writeJSON(w, http.StatusOK, result)
}

// ResetTable re-seeds the session's table from the presets.
func (h *Handler) ResetTable(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.Reset(middleware.SessionID(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.metrics.ObserveMutation(metrics.OpReset)
	h.writeJSON(w, http.StatusOK, state)
}

// GetSummary returns the headline figures of the session's table.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	state, ok := h.currentTable(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, services.Summarize(state))
}

// GetScatter returns the savings scatter plot points.
func (h *Handler) GetScatter(w http.ResponseWriter, r *http.Request) {
	state, ok := h.currentTable(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, services.SavingsScatter(state))
}

// GetBreakdown returns the cost breakdown bars of the row at {index}.
func (h *Handler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	index, err := services.ParseRowIndex(r.PathValue("index"))
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, ok := h.currentTable(w, r)
	if !ok {
		return
	}

	breakdown, err := services.CostBreakdown(state, index)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, breakdown)
}
