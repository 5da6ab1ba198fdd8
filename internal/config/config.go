package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "fieldwatch.json"

	// DefaultAddress is the default control server listen address.
	DefaultAddress = ":7070"

	// DefaultMetricsNamespace is the default Prometheus namespace.
	DefaultMetricsNamespace = "fieldwatch"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "fieldwatch"
)

// Config represents the complete fieldwatch.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Server contains control server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Trace contains OpenTelemetry configuration.
	Trace TraceConfig `json:"trace,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains control server settings.
type ServerConfig struct {
	// Address is the listen address (default: ":7070").
	Address string `json:"address,omitempty"`

	// ReadTimeout is the WebSocket read deadline, e.g. "60s".
	ReadTimeout string `json:"readTimeout,omitempty"`

	// WriteTimeout is the WebSocket write deadline, e.g. "10s".
	WriteTimeout string `json:"writeTimeout,omitempty"`

	// PingInterval is the WebSocket keepalive interval, e.g. "30s".
	PingInterval string `json:"pingInterval,omitempty"`

	// AllowedOrigins lists origins accepted for WebSocket upgrades.
	// Empty means same-origin only.
	AllowedOrigins []string `json:"allowedOrigins,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled controls whether the metrics middleware is wired.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace is the metrics namespace (default: "fieldwatch").
	Namespace string `json:"namespace,omitempty"`
}

// TraceConfig contains OpenTelemetry settings.
type TraceConfig struct {
	// Enabled controls whether the tracing middleware is wired.
	Enabled bool `json:"enabled,omitempty"`

	// TracerName is the tracer name (default: "fieldwatch").
	TracerName string `json:"tracerName,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Address: DefaultAddress,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultMetricsNamespace,
		},
		Trace: TraceConfig{
			TracerName: DefaultTracerName,
		},
	}
}

// applyDefaults fills in defaults for any unset fields.
func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
	if c.Trace.TracerName == "" {
		c.Trace.TracerName = DefaultTracerName
	}
}

// Load reads configuration from the specified directory. It looks for
// fieldwatch.json in the directory; a missing file yields the defaults.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := New()
		cfg.configPath = configPath
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("config: no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}
