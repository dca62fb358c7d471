package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/reddable-mcp/internal/cli"
	"github.com/bobmcallan/reddable-mcp/internal/config"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reddable-mcp",
	Short: "Reddit Ads MCP tool server",
	Long:  "reddable-mcp exposes Reddit Ads account, campaign, ad group, post and ad operations as MCP tools.",
	// SilenceUsage prevents printing usage on every error
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = config.GetVersion()
	rootCmd.SetVersionTemplate(fmt.Sprintf("reddable-mcp version %s\n", config.GetFullVersion()))

	rootCmd.AddCommand(cli.NewServeCmd())
	rootCmd.AddCommand(cli.NewToolsCmd())
	rootCmd.AddCommand(cli.NewValidateCmd())
}
