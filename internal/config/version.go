package config

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags at build time. Binaries built with `go install` leave them
// unset and report the module version and VCS stamp instead.
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Build     string `json:"build"`
	GitCommit string `json:"git_commit"`
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (build: %s, commit: %s)", b.Version, b.Build, b.GitCommit)
}

// Info returns the ldflags values, filling unset ones from the Go build info.
func Info() BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	return resolveBuildInfo(bi, ok)
}

func resolveBuildInfo(bi *debug.BuildInfo, ok bool) BuildInfo {
	info := BuildInfo{Version: Version, Build: Build, GitCommit: GitCommit}
	if !ok || bi == nil {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" && s.Value != "" {
				info.GitCommit = shortRevision(s.Value)
			}
		case "vcs.time":
			if info.Build == "unknown" && s.Value != "" {
				info.Build = s.Value
			}
		}
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// GetVersion returns the version string advertised to MCP clients.
func GetVersion() string {
	return Info().Version
}

// GetFullVersion returns version with build info.
func GetFullVersion() string {
	return Info().String()
}
