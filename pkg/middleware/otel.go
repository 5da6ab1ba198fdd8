package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fieldwatch-dev/fieldwatch/pkg/observe"
)

// Default tracer name for fieldwatch instrumentation.
const defaultTracerName = "fieldwatch"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "fieldwatch").
	TracerName string

	// Filter determines which paths to trace. Return true to trace the
	// notification, false to skip. If nil, all notifications are traced.
	Filter func(path string) bool

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithPathFilter sets a filter function for notification paths.
func WithPathFilter(filter func(path string) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// OpenTelemetry creates middleware that traces every dispatched
// notification. Each dispatch becomes one span named "fieldwatch.notify"
// with the resolved path and serialized value size as attributes.
//
// The tracer comes from the global OpenTelemetry tracer provider.
// Configure it in main() before wiring the listener:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	config.tracer = otel.Tracer(config.TracerName)

	return func(next observe.Listener) observe.Listener {
		return observe.ListenerFunc(func(path, value string) {
			if config.Filter != nil && !config.Filter(path) {
				next.OnUpdate(path, value)
				return
			}

			_, span := config.tracer.Start(
				context.Background(),
				"fieldwatch.notify",
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(
					attribute.String("fieldwatch.path", path),
					attribute.Int("fieldwatch.value_size", len(value)),
				),
			)
			next.OnUpdate(path, value)
			span.End()
		})
	}
}
