package handlers

import (
	"net/http"

	"github.com/bobmcallan/reddable-mcp/internal/config"
)

// VersionHandler reports the server name and build identity.
type VersionHandler struct {
	name string
}

// NewVersionHandler creates a version handler reporting the given server name.
func NewVersionHandler(name string) *VersionHandler {
	return &VersionHandler{name: name}
}

type versionResponse struct {
	Name string `json:"name"`
	config.BuildInfo
}

// ServeHTTP handles GET /api/version.
func (h *VersionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, versionResponse{Name: h.name, BuildInfo: config.Info()})
}
