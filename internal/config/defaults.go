package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Reddit Ads MCP",
			Port: 4243,
			Host: "localhost",
		},
		API: APIConfig{
			URL:     "http://localhost:3000",
			Timeout: "300s",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console"},
			FilePath:   "logs/reddable-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
		Tracing: TracingConfig{
			ServiceName: "reddable-mcp",
		},
	}
}
