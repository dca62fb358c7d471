package handlers

import (
	"net/http"
	"time"
)

// HealthHandler reports liveness plus how many tools are being served.
// It never calls the upstream API.
type HealthHandler struct {
	started   time.Time
	toolCount func() int
}

// NewHealthHandler creates a health handler. toolCount may be nil.
func NewHealthHandler(toolCount func() int) *HealthHandler {
	return &HealthHandler{started: time.Now(), toolCount: toolCount}
}

type healthResponse struct {
	Status        string `json:"status"`
	Tools         int    `json:"tools"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// ServeHTTP handles GET /api/health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	resp := healthResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	}
	if h.toolCount != nil {
		resp.Tools = h.toolCount()
	}
	WriteJSON(w, http.StatusOK, resp)
}
