package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/bobmcallan/reddable-mcp/internal/mcp"
)

// NewToolsCmd creates the "tools" subcommand, which prints the tool catalog.
func NewToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server publishes",
		Args:  cobra.NoArgs,
		RunE:  runTools,
	}
	cmd.Flags().Bool("json", false, "Print full tool definitions, including input schemas")
	return cmd
}

func runTools(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	registry, err := mcp.NewRegistry(nil, nil)
	if err != nil {
		return err
	}
	tools := registry.Tools()

	out := cmd.OutOrStdout()
	if asJSON {
		return writeIndented(out, tools)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTITLE\tMODE")
	for _, t := range tools {
		mode := "write"
		if t.Annotations.ReadOnlyHint != nil && *t.Annotations.ReadOnlyHint {
			mode = "read"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, t.Annotations.Title, mode)
	}
	return tw.Flush()
}

// NewValidateCmd creates the "validate" subcommand. It checks tool arguments
// offline, without contacting the upstream service.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <tool>",
		Short: "Check tool arguments and print them with defaults applied",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	cmd.Flags().String("args", "{}", "Tool arguments as a JSON object")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("args")

	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return errors.Wrap(err, "--args is not a valid JSON object")
	}

	registry, err := mcp.NewRegistry(nil, nil)
	if err != nil {
		return err
	}

	normalized, err := registry.Validate(args[0], decoded)
	if err != nil {
		return err
	}
	return writeIndented(cmd.OutOrStdout(), normalized)
}

func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
