package handler

import (
	"net/http"
)

// HealthChecker reports backing-store connectivity for readiness.
type HealthChecker interface {
	Healthy() bool
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler creates a health handler. checker may be nil when
// the in-process memory store is in use.
func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /ready.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.checker != nil && !h.checker.Healthy() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"memory": "disconnected",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
