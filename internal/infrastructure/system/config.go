// Package system provides infrastructure for system-level configuration.
// This covers the user config file (~/.linkpage/config.yaml).
package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
)

// Config represents the global configuration file (~/.linkpage/config.yaml).
// Command flags and LINKPAGE_* environment variables override it.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	GitHub   GitHubConfig   `yaml:"github"`
	Server   ServerConfig   `yaml:"server"`
	Render   RenderConfig   `yaml:"render"`
}

// DocumentConfig says where the link page document lives.
// URL wins over Path when both are set.
type DocumentConfig struct {
	URL  string `yaml:"url"`
	Path string `yaml:"path"`
}

// GitHubConfig configures profile enrichment.
type GitHubConfig struct {
	APIBase      string `yaml:"api_base"`
	FallbackBase string `yaml:"fallback_base"`
}

// ServerConfig configures `linkpage serve`.
type ServerConfig struct {
	Addr              string `yaml:"addr"`
	ReadHeaderTimeout string `yaml:"read_header_timeout"`
	ShutdownTimeout   string `yaml:"shutdown_timeout"`
}

// RenderConfig bounds how long a render waits for its fetches.
type RenderConfig struct {
	Timeout string `yaml:"timeout"`
}

// Defaults.
const (
	DefaultAPIBase           = "https://api.github.com"
	DefaultFallbackBase      = "https://unavatar.io/github/"
	DefaultServerAddr        = "127.0.0.1:8080"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultRenderTimeout     = 10 * time.Second
)

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{
			Path: "data.json",
		},
		GitHub: GitHubConfig{
			APIBase:      DefaultAPIBase,
			FallbackBase: DefaultFallbackBase,
		},
		Server: ServerConfig{
			Addr:              DefaultServerAddr,
			ReadHeaderTimeout: DefaultReadHeaderTimeout.String(),
			ShutdownTimeout:   DefaultShutdownTimeout.String(),
		},
		Render: RenderConfig{
			Timeout: DefaultRenderTimeout.String(),
		},
	}
}

// DefaultConfigPath returns ~/.linkpage/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".linkpage", "config.yaml")
}

// ReadHeaderTimeout parses Server.ReadHeaderTimeout.
func (c *Config) ReadHeaderTimeout() (time.Duration, error) {
	return parseDuration("server.read_header_timeout", c.Server.ReadHeaderTimeout, DefaultReadHeaderTimeout)
}

// ShutdownTimeout parses Server.ShutdownTimeout.
func (c *Config) ShutdownTimeout() (time.Duration, error) {
	return parseDuration("server.shutdown_timeout", c.Server.ShutdownTimeout, DefaultShutdownTimeout)
}

// RenderTimeout parses Render.Timeout. Zero disables the bound.
func (c *Config) RenderTimeout() (time.Duration, error) {
	return parseDuration("render.timeout", c.Render.Timeout, DefaultRenderTimeout)
}

// Validate checks every duration field.
func (c *Config) Validate() error {
	for _, parse := range []func() (time.Duration, error){c.ReadHeaderTimeout, c.ShutdownTimeout, c.RenderTimeout} {
		if _, err := parse(); err != nil {
			return err
		}
	}
	return nil
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, value)
	}
	return d, nil
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
// Keys missing from the file keep their defaults.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is the user's own config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadConfig implements ports.SystemConfigProvider.
func (l *ConfigLoader) LoadConfig(_ context.Context, path string) (*Config, error) {
	return l.Load(path)
}
