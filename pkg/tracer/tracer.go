// Package tracer wires the OTLP HTTP exporter behind the otelfiber request
// middleware. When no endpoint is configured the global no-op provider stays
// in place.
package tracer

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// InitTracer installs a tracer provider exporting to the given OTLP HTTP
// endpoint and returns a shutdown func. Returns a no-op shutdown when
// endpoint is empty.
func InitTracer(endpoint, serviceName string) func(context.Context) {
	if endpoint == "" {
		return func(context.Context) {}
	}

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		log.Printf("[WARN] Failed to initialize OTLP exporter: %v", err)
		return func(context.Context) {}
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		res = resource.Default()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("[WARN] Tracer shutdown: %v", err)
		}
	}
}
