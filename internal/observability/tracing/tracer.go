// Package tracing provides OpenTelemetry integration: a global tracer,
// a tracer-provider bootstrap and HTTP middleware that propagates trace
// context.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("conduit")

// GetTracer returns the global tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}

// Init installs a tracer provider and the W3C propagator. Without an
// exporter wired, spans are sampled but dropped; the trace IDs still
// flow through logs and the X-Trace-Id response header. The returned
// shutdown function flushes the provider.
func Init() *sdktrace.TracerProvider {
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return provider
}
