package server

import (
	"net/http"

	"github.com/bobmcallan/reddable-mcp/internal/handlers"
)

// setupRoutes mounts the MCP endpoint and the JSON status routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Streamable HTTP; GET opens the SSE stream, POST carries JSON-RPC.
	if s.app.MCPHandler != nil {
		mux.Handle("/mcp", s.app.MCPHandler)
	}

	mux.Handle("/api/health", s.app.HealthHandler)
	mux.Handle("/api/version", s.app.VersionHandler)
	mux.Handle("/api/tools", s.app.ToolsHandler)
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug().Str("path", r.URL.Path).Msg("no API route")
	handlers.WriteError(w, http.StatusNotFound, "no route for "+r.URL.Path)
}
