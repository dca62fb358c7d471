package handlers

import (
	"net/http"
)

// ToolSummary is the public description of one MCP tool.
type ToolSummary struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ReadOnly    bool     `json:"read_only"`
	Required    []string `json:"required"`
}

// ToolsHandler lists the tools the MCP endpoint serves.
type ToolsHandler struct {
	catalogFn func() []ToolSummary
}

// NewToolsHandler creates a handler backed by catalogFn.
func NewToolsHandler(catalogFn func() []ToolSummary) *ToolsHandler {
	return &ToolsHandler{catalogFn: catalogFn}
}

// ServeHTTP handles GET /api/tools.
func (h *ToolsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	tools := []ToolSummary{}
	if h.catalogFn != nil {
		if catalog := h.catalogFn(); catalog != nil {
			tools = catalog
		}
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"count": len(tools),
		"tools": tools,
	})
}
