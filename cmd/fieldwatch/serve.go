package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldwatch-dev/fieldwatch/internal/config"
	"github.com/fieldwatch-dev/fieldwatch/pkg/middleware"
	"github.com/fieldwatch-dev/fieldwatch/pkg/observe"
	"github.com/fieldwatch-dev/fieldwatch/pkg/server"
)

func serveCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the control server over the sample universe",
		Long: `Serve starts the HTTP/WebSocket control server. Values stay
observable on the console while external tooling reads snapshots,
drives updates, and follows the live feed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configDir)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVarP(&configDir, "config", "c", ".", "directory containing fieldwatch.json")
	return cmd
}

func runServe(cfg *config.Config) error {
	reg := observe.NewRegistry()
	newSampleValues(reg)

	srv := server.New(reg, &server.ServerConfig{
		Address:      cfg.Server.Address,
		ReadTimeout:  parseDuration(cfg.Server.ReadTimeout),
		WriteTimeout: parseDuration(cfg.Server.WriteTimeout),
		PingInterval: parseDuration(cfg.Server.PingInterval),
		CheckOrigin:  originCheck(cfg.Server.AllowedOrigins),
	})

	var mws []middleware.Middleware
	if cfg.Metrics.Enabled {
		mws = append(mws, middleware.Metrics(
			middleware.WithNamespace(cfg.Metrics.Namespace),
		))
	}
	if cfg.Trace.Enabled {
		mws = append(mws, middleware.OpenTelemetry(
			middleware.WithTracerName(cfg.Trace.TracerName),
		))
	}

	reg.SetListener(middleware.Chain(
		observe.Fanout(
			observe.NewConsoleListener(nil),
			srv.Hub(),
		),
		mws...,
	))

	info("observing %d nodes on %s", reg.Len(), cfg.Server.Address)
	return srv.Run()
}

// parseDuration parses a config duration string; empty or invalid input
// yields zero so the server falls back to its own default.
func parseDuration(s string) time.Duration {
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

// originCheck builds a CheckOrigin function from the allowed-origins
// list. Empty keeps the upgrader's same-origin default; "*" allows any.
func originCheck(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}
