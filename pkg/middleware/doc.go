// Package middleware provides observability decorators for the
// observe.Listener contract.
//
// A Middleware wraps one Listener in another, adding behavior around each
// dispatched notification without the core model knowing about it.
//
// # Prometheus Metrics
//
// The Metrics middleware counts notifications per path and times the
// wrapped listener:
//   - fieldwatch_notifications_total{path}
//   - fieldwatch_listener_duration_seconds
//
//	reg.SetListener(middleware.Chain(
//	    observe.NewConsoleListener(nil),
//	    middleware.Metrics(middleware.WithNamespace("myapp")),
//	))
//
// Expose the metrics with promhttp, or use the control server's built-in
// /metrics route.
//
// # OpenTelemetry Tracing
//
// The OpenTelemetry middleware starts one span per notification from the
// global tracer provider, attributed with the node path:
//
//	middleware.OpenTelemetry(
//	    middleware.WithTracerName("myapp"),
//	    middleware.WithPathFilter(func(path string) bool {
//	        return path != "heartbeat"
//	    }),
//	)
//
// Configure the tracer provider in main() before wiring the listener.
package middleware
