package server

import (
	"log/slog"
	"net/http"
	"time"
)

// ServerConfig holds the control server configuration.
type ServerConfig struct {
	// Address is the listen address (default: ":7070").
	Address string

	// ReadHeaderTimeout is the maximum time to read request headers.
	ReadHeaderTimeout time.Duration

	// ReadTimeout is the maximum time to wait for a message from a
	// WebSocket client. Also serves as the pong wait.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a message
	// to a WebSocket client.
	WriteTimeout time.Duration

	// PingInterval is how often to ping WebSocket clients. Must be
	// shorter than ReadTimeout.
	PingInterval time.Duration

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	ShutdownTimeout time.Duration

	// SendBuffer is the per-client outbound queue size. Clients that
	// fall more than SendBuffer updates behind are disconnected.
	SendBuffer int

	// CheckOrigin validates the WebSocket upgrade origin. Nil keeps the
	// upgrader's same-origin default.
	CheckOrigin func(r *http.Request) bool

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           ":7070",
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		PingInterval:      30 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		SendBuffer:        64,
	}
}

// withDefaults fills in zero fields from DefaultServerConfig.
func (c *ServerConfig) withDefaults() *ServerConfig {
	if c == nil {
		return DefaultServerConfig()
	}
	defaults := DefaultServerConfig()
	if c.Address == "" {
		c.Address = defaults.Address
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = defaults.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = defaults.WriteTimeout
	}
	if c.PingInterval == 0 {
		c.PingInterval = defaults.PingInterval
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if c.SendBuffer == 0 {
		c.SendBuffer = defaults.SendBuffer
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
