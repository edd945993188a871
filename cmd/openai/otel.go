package main

import (
	"context"
	"strings"

	// Packages
	version "github.com/mutablelogic/go-openai/pkg/version"
	otlptracehttp "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// newTracer returns a tracer which exports spans over OTLP/HTTP, and a
// function to flush and stop the exporter. The endpoint is either host:port,
// which is sent without TLS, or a URL.
func newTracer(ctx context.Context, endpoint, name string) (trace.Tracer, func(context.Context) error, error) {
	opts := []otlptracehttp.Option{}
	switch {
	case strings.HasPrefix(endpoint, "http://"), strings.HasPrefix(endpoint, "https://"):
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	default:
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}
	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	return provider.Tracer(name, trace.WithInstrumentationVersion(version.Version())), provider.Shutdown, nil
}
