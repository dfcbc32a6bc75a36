package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/aiswo/librarydesk/tablestore"
	"github.com/aiswo/librarydesk/tablestore/oteladapters"
)

const metricExportInterval = 15 * time.Second

// ObservabilityProviders holds the OTel SDK providers and the adapters built on them.
type ObservabilityProviders struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	LoggerProvider *sdklog.LoggerProvider
	Metrics        *oteladapters.MetricsCollector
	Tracing        *oteladapters.TracingCollector
	Logger         tablestore.ContextualLogger
}

// Enabled reports whether an OTLP endpoint was configured.
func (p *ObservabilityProviders) Enabled() bool {
	return p.TracerProvider != nil
}

// Observability returns the collectors for OpenBackend. Without an endpoint everything is nil.
func (p *ObservabilityProviders) Observability() Observability {
	if !p.Enabled() {
		return Observability{}
	}

	return Observability{
		ContextualLogger: p.Logger,
		Metrics:          p.Metrics,
		Tracing:          p.Tracing,
	}
}

// Shutdown flushes and stops all providers.
func (p *ObservabilityProviders) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}

	return errors.Join(
		p.TracerProvider.Shutdown(ctx),
		p.MeterProvider.Shutdown(ctx),
		p.LoggerProvider.Shutdown(ctx),
	)
}

// NewObservabilityProviders sets up OTLP gRPC exporters for traces, metrics and logs when
// settings.OTLPEndpoint is set, and registers the providers globally.
// settings.OTelLogger picks the contextual logger: the slog bridge or the OTel log API.
func NewObservabilityProviders(ctx context.Context, settings StoreSettings) (*ObservabilityProviders, error) {
	if settings.OTLPEndpoint == "" {
		return &ObservabilityProviders{}, nil
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", settings.ServiceName),
		attribute.String("librarydesk.engine", settings.Engine),
	)

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(settings.OTLPEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(settings.OTLPEndpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	logExporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithEndpoint(settings.OTLPEndpoint),
		otlploggrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create log exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(metricExportInterval))),
		sdkmetric.WithResource(res),
	)

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	global.SetLoggerProvider(lp)

	return &ObservabilityProviders{
		TracerProvider: tp,
		MeterProvider:  mp,
		LoggerProvider: lp,
		Metrics:        oteladapters.NewMetricsCollector(mp.Meter(settings.ServiceName)),
		Tracing:        oteladapters.NewTracingCollector(tp.Tracer(settings.ServiceName)),
		Logger:         contextualLogger(settings, lp),
	}, nil
}

func contextualLogger(settings StoreSettings, lp *sdklog.LoggerProvider) tablestore.ContextualLogger {
	if settings.OTelLogger == LoggerOTelAPI {
		return oteladapters.NewOTelLogger(lp.Logger(settings.ServiceName))
	}

	return oteladapters.NewSlogBridgeLogger(settings.ServiceName)
}
