// Package config resolves the Logseq API connection settings.
//
// Settings merge in three layers: built-in defaults, an optional YAML
// config file, then environment variable overrides. The config file is
// optional because most setups only need LOGSEQ_API_TOKEN in the
// environment (or a .env file next to the binary).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPort is the port the Logseq HTTP APIs server listens on.
const DefaultPort = 12315

// Config holds the connection settings for the Logseq HTTP API.
type Config struct {
	Host  string `yaml:"host"`
	Port  int    `yaml:"port"`
	URL   string `yaml:"url"`   // full endpoint override; when set, host/port are ignored
	Token string `yaml:"token"` // bearer token configured in Logseq's API settings
}

// Default returns a config pointing at a local Logseq instance.
func Default() *Config {
	return &Config{
		Host: "127.0.0.1",
		Port: DefaultPort,
	}
}

// Load builds the effective configuration: defaults, then the optional
// config file, then environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	path := configFilePath()
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("invalid config file %s: %w", path, err)
			}
		} else if os.Getenv("LOGSEQ_MCP_CONFIG") != "" {
			// An explicitly requested file must exist.
			return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}

	return cfg, nil
}

// APIURL returns the endpoint the client POSTs to.
func (c *Config) APIURL() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("http://%s:%d/api", c.Host, c.Port)
}

// configFilePath returns the config file to try: LOGSEQ_MCP_CONFIG if set,
// else ~/.config/logseq-mcp/config.yaml.
func configFilePath() string {
	if p := os.Getenv("LOGSEQ_MCP_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "logseq-mcp", "config.yaml")
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LOGSEQ_API_HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("LOGSEQ_API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			c.Port = port
		}
	}
	if v := os.Getenv("LOGSEQ_API_URL"); v != "" {
		c.URL = v
	}
	if v := os.Getenv("LOGSEQ_API_TOKEN"); v != "" {
		c.Token = v
	}
}
