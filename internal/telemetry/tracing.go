// Package telemetry installs the process-wide OpenTelemetry tracer provider.
package telemetry

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/bobmcallan/reddable-mcp/internal/common"
	"github.com/bobmcallan/reddable-mcp/internal/config"
)

// ShutdownFunc flushes pending spans and stops the exporter.
type ShutdownFunc func(context.Context) error

func noop(context.Context) error { return nil }

// Setup configures OTLP/HTTP span export when an endpoint is configured.
// With no endpoint the global provider is left alone and spans are dropped.
func Setup(ctx context.Context, cfg config.TracingConfig, logger *common.Logger) (ShutdownFunc, error) {
	if cfg.Endpoint == "" {
		return noop, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return noop, errors.Wrap(err, "creating OTLP trace exporter")
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "reddable-mcp"
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", config.GetVersion()),
		)),
	)
	otel.SetTracerProvider(provider)

	if logger != nil {
		logger.Info().
			Str("endpoint", cfg.Endpoint).
			Str("service", serviceName).
			Msg("OTLP trace export enabled")
	}

	return func(ctx context.Context) error {
		if err := provider.Shutdown(ctx); err != nil {
			return errors.Wrap(err, "shutting down tracer provider")
		}
		return nil
	}, nil
}
