package handlers

import (
	"net/http"
	"time"

	"github.com/ramonehamilton/EDH-Companion/internal/api/response"
	"github.com/ramonehamilton/EDH-Companion/internal/version"
)

// SystemHandler serves health and version endpoints.
type SystemHandler struct {
	startTime time.Time
}

// NewSystemHandler creates a system handler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{startTime: time.Now()}
}

// Health handles GET /health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": version.Version,
		"uptime":  time.Since(h.startTime).String(),
	})
}
