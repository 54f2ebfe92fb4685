package handlers

import (
	"log"
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
}

// Health reports liveness. It pings the pool directly rather than going
// through the request-scoped connection, so it stays cheap and never
// touches business data.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(r.Context()); err != nil {
		log.Printf("health check failed: %v", err)
		writeJSON(w, HealthResponse{Status: "unhealthy"}, http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, HealthResponse{Status: "healthy"}, http.StatusOK)
}
