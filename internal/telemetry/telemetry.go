// Package telemetry sets up OpenTelemetry tracing for the UI.
//
// Tracing is opt-in: without an OTLP endpoint the provider is a no-op and
// nothing leaves the process.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope for navigation spans.
const TracerName = "schooldesk/ui"

// Config selects the exporter.
type Config struct {
	Endpoint    string // OTLP/HTTP URL, e.g. http://localhost:4318
	ServiceName string
}

// Setup returns a tracer provider and a shutdown func that flushes pending
// spans. The shutdown func is never nil.
func Setup(ctx context.Context, cfg Config) (trace.TracerProvider, func(context.Context) error, error) {
	noopShutdown := func(context.Context) error { return nil }
	if cfg.Endpoint == "" {
		return noop.NewTracerProvider(), noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return noop.NewTracerProvider(), noopShutdown, fmt.Errorf("otlp exporter: %w", err)
	}
	return newProvider(ctx, cfg.ServiceName, sdktrace.WithBatcher(exporter))
}

func newProvider(ctx context.Context, serviceName string, opts ...sdktrace.TracerProviderOption) (trace.TracerProvider, func(context.Context) error, error) {
	if serviceName == "" {
		serviceName = "schooldesk"
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, fmt.Errorf("otel resource: %w", err)
	}
	opts = append(opts, sdktrace.WithResource(res), sdktrace.WithSampler(sdktrace.AlwaysSample()))
	tp := sdktrace.NewTracerProvider(opts...)
	return tp, tp.Shutdown, nil
}
