// ABOUTME: HTTP handler for stateless scenario computation
// ABOUTME: Computes the cost profile of one input without touching any table

package handlers

import (
	"net/http"

	"github.com/chrisspier/vdb-benchmark-app/backend/models"
	"github.com/chrisspier/vdb-benchmark-app/backend/services"
)

// ComputeScenario computes a single scenario.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) ComputeScenario(w http.ResponseWriter, r *http.Request) {
	var input models.ScenarioInput
	if !h.decodeJSON(w, r, &input) {
		return
	}

	result, err := services.ComputeScenario(input)
	h.metrics.ObserveCompute(err)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}
