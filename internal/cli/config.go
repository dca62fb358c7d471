package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/reddable-mcp/internal/config"
)

const configFileName = "reddable-mcp.toml"

// addConfigFlags registers the flags shared by every command that loads config.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("config", "c", nil, "Configuration file path (repeatable, later files win)")
}

// loadConfig resolves config files from flags or auto-discovery and loads them.
func loadConfig(cmd *cobra.Command) (*config.Config, []string, error) {
	paths, _ := cmd.Flags().GetStringArray("config")
	if len(paths) == 0 {
		for _, path := range configSearchPaths() {
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
				break
			}
		}
	}

	cfg, err := config.LoadFromFiles(paths...)
	if err != nil {
		return nil, paths, err
	}
	return cfg, paths, nil
}

// configSearchPaths returns TOML files to auto-discover (first match wins).
// Binary-relative paths come first, then the working directory.
func configSearchPaths() []string {
	candidates := []string{
		configFileName,
		filepath.Join("config", configFileName),
	}

	exe, err := os.Executable()
	if err != nil {
		return candidates
	}
	binDir := filepath.Dir(exe)

	paths := []string{
		filepath.Join(binDir, configFileName),
		filepath.Join(binDir, "config", configFileName),
	}
	paths = append(paths, candidates...)

	seen := make(map[string]bool, len(paths))
	deduped := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		deduped = append(deduped, p)
	}
	return deduped
}
