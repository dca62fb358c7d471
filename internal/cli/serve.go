package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/bobmcallan/reddable-mcp/internal/app"
	"github.com/bobmcallan/reddable-mcp/internal/common"
	"github.com/bobmcallan/reddable-mcp/internal/config"
	"github.com/bobmcallan/reddable-mcp/internal/server"
	"github.com/bobmcallan/reddable-mcp/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the "serve" subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Reddit Ads tools over MCP",
		Long:  "Serve the Reddit Ads tools over streamable HTTP, or over stdin/stdout with --stdio.",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	addConfigFlags(cmd)
	cmd.Flags().Bool("stdio", false, "Use the stdio transport instead of HTTP")
	cmd.Flags().IntP("port", "p", 0, "Server port (overrides config)")
	cmd.Flags().String("host", "", "Server host (overrides config)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	stdio, _ := cmd.Flags().GetBool("stdio")
	port, _ := cmd.Flags().GetInt("port")
	host, _ := cmd.Flags().GetString("host")

	cfg, paths, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	config.ApplyFlagOverrides(cfg, port, host)

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)
	logger.Info().
		Int("port", cfg.Server.Port).
		Str("host", cfg.Server.Host).
		Str("transport", transportName(stdio)).
		Str("config_files", fmt.Sprintf("%v", paths)).
		Msg("configuration loaded")

	shutdownTracing, err := telemetry.Setup(cmd.Context(), cfg.Tracing, logger)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn().Err(err).Msg("trace flush failed")
		}
	}()

	application, err := app.New(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "failed to initialize application")
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error().Err(err).Msg("application shutdown failed")
		}
	}()

	if stdio {
		// ServeStdio owns stdin/stdout and its own signal handling.
		if err := mcpserver.ServeStdio(application.MCPServer()); err != nil {
			return errors.Wrap(err, "stdio server error")
		}
		return nil
	}

	return serveHTTP(cmd.Context(), server.New(application), logger)
}

func transportName(stdio bool) string {
	if stdio {
		return "stdio"
	}
	return "http"
}

func serveHTTP(parent context.Context, srv *server.Server, logger *common.Logger) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info().Msg("server stopped")
		return nil
	case err := <-errCh:
		return err
	}
}
