package handlers

import (
	"net/http"
	"time"

	"github.com/hic-health/hic-be/internal/http/respond"
)

// HealthHandler reports liveness and uptime.
type HealthHandler struct {
	startedAt time.Time
	now       func() time.Time
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, now: time.Now}
}

// Register wires the handler into a ServeMux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", h.handle)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	respond.Write(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"message":   "HIC API is running",
		"timestamp": now.UTC().Format(time.RFC3339),
		"uptime":    now.Sub(h.startedAt).Truncate(time.Second).String(),
	})
}
