package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents the health probe body
// swagger:model HealthResponse
type HealthResponse struct {
	// Status
	// default: ok
	Status string `json:"status"`
}

// NewHealthHandler returns the liveness probe used by clients to decide
// whether the backend is reachable before syncing staged writes.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Server is up"
// @Router /api/health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	}
}
