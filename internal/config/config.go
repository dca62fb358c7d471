package config

import (
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	API     APIConfig     `toml:"api"`
	Logging LoggingConfig `toml:"logging"`
	Tracing TracingConfig `toml:"tracing"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// APIConfig describes the upstream Reddable ads API.
type APIConfig struct {
	URL     string `toml:"url"`
	Key     string `toml:"key"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration.
func (c *APIConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 300 * time.Second
	}
	return d
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// TracingConfig controls OTLP span export. Export is off when Endpoint is empty.
type TracingConfig struct {
	Endpoint    string `toml:"otlp_endpoint"`
	Insecure    bool   `toml:"insecure"`
	ServiceName string `toml:"service_name"`
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s (file %d of %d)", path, i+1, len(paths))
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies REDDABLE_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if key := os.Getenv("REDDABLE_API_KEY"); key != "" {
		config.API.Key = key
	}
	if u := os.Getenv("REDDABLE_API_URL"); u != "" {
		config.API.URL = u
	}
	if timeout := os.Getenv("REDDABLE_API_TIMEOUT"); timeout != "" {
		config.API.Timeout = timeout
	}
	if port := os.Getenv("REDDABLE_MCP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("REDDABLE_MCP_HOST"); host != "" {
		config.Server.Host = host
	}
	if level := os.Getenv("REDDABLE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if endpoint := os.Getenv("REDDABLE_OTLP_ENDPOINT"); endpoint != "" {
		config.Tracing.Endpoint = endpoint
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate reports configuration that would make every tool call fail.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return errors.New("api key is required (set REDDABLE_API_KEY or [api] key)")
	}
	u, err := url.Parse(c.API.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.Newf("api url %q must be an absolute http(s) URL", c.API.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Newf("api url %q must use http or https", c.API.URL)
	}
	return nil
}

// RedactKey hides all but the last four characters of a credential.
func RedactKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
