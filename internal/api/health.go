package api

import (
	"net/http"
	"time"

	"github.com/studyhub/studyhub/internal/api/respond"
)

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// CheckHealth handles GET /api/health
// The store is in-process, so the service is healthy whenever it can
// serve the request.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
