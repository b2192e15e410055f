package handler

import (
	"net/http"

	"github.com/mwren/craftcost/internal/index"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleHealthz provides a basic liveness check.
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports whether the reference snapshot loaded. An empty
// snapshot means startup fetch failed and every resolution would come back
// Unknown, so the service should not receive traffic.
func HandleReadyz(idx *index.Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if idx == nil || len(idx.Recipes()) == 0 {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "reference snapshot not loaded",
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
