package app

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/reddable-mcp/internal/client"
	"github.com/bobmcallan/reddable-mcp/internal/common"
	"github.com/bobmcallan/reddable-mcp/internal/config"
	"github.com/bobmcallan/reddable-mcp/internal/handlers"
	"github.com/bobmcallan/reddable-mcp/internal/mcp"
)

// catalogAdapter converts registry tools to their public summaries.
func catalogAdapter(registry *mcp.Registry) func() []handlers.ToolSummary {
	return func() []handlers.ToolSummary {
		if registry == nil {
			return nil
		}
		tools := registry.Tools()
		summaries := make([]handlers.ToolSummary, len(tools))
		for i, t := range tools {
			readOnly := t.Annotations.ReadOnlyHint != nil && *t.Annotations.ReadOnlyHint
			summaries[i] = handlers.ToolSummary{
				Name:        t.Name,
				Title:       t.Annotations.Title,
				Description: t.Description,
				ReadOnly:    readOnly,
				Required:    append([]string{}, t.InputSchema.Required...),
			}
		}
		return summaries
	}
}

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Client   *client.AdsClient
	Registry *mcp.Registry

	// HTTP handlers
	HealthHandler  *handlers.HealthHandler
	VersionHandler *handlers.VersionHandler
	ToolsHandler   *handlers.ToolsHandler
	MCPHandler     *mcp.Handler
}

// New validates cfg and wires the upstream client, tool registry and handlers.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		Logger: logger,
	}

	a.Client = client.NewAdsClient(cfg.API.URL, cfg.API.Key, cfg.API.GetTimeout(), logger)

	registry, err := mcp.NewRegistry(a.Client, logger)
	if err != nil {
		return nil, err
	}
	a.Registry = registry

	a.initHandlers()

	logger.Info().
		Str("api_url", cfg.API.URL).
		Str("api_key", config.RedactKey(cfg.API.Key)).
		Str("timeout", cfg.API.GetTimeout().String()).
		Int("tools", len(registry.Tools())).
		Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.HealthHandler = handlers.NewHealthHandler(func() int { return len(a.Registry.Tools()) })
	a.VersionHandler = handlers.NewVersionHandler(a.Config.Server.Name)
	a.ToolsHandler = handlers.NewToolsHandler(catalogAdapter(a.Registry))
	a.MCPHandler = mcp.NewHandler(a.Registry, a.Config.Server.Name, config.GetVersion(), a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// MCPServer builds a standalone MCP server for the stdio transport.
func (a *App) MCPServer() *server.MCPServer {
	return mcp.NewServer(a.Registry, a.Config.Server.Name, config.GetVersion())
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
