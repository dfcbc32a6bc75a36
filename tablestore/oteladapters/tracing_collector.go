package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aiswo/librarydesk/tablestore"
)

// TracingCollector implements tablestore.TracingCollector with an OpenTelemetry tracer.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a collector on a tracer from your TracerProvider.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span carrying attrs and returns the context holding it.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, tablestore.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(toAttributes(attrs)...))

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan adds attrs, maps status onto the span status and ends the span.
// Span contexts not created by this collector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx tablestore.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(toAttributes(attrs)...)
	otelSpanCtx.SetStatus(status)
	otelSpanCtx.span.End()
}

var _ tablestore.TracingCollector = (*TracingCollector)(nil)

// OTelSpanContext wraps an OpenTelemetry span.
type OTelSpanContext struct {
	span trace.Span
}

// SetStatus maps the status strings used by the engines and handlers to span codes.
// A business rejection or a missing table is not a span error; both are kept as a status attribute.
func (s *OTelSpanContext) SetStatus(status string) {
	switch status {
	case tablestore.StatusSuccess:
		s.span.SetStatus(codes.Ok, "")
	case tablestore.StatusError:
		s.span.SetStatus(codes.Error, "operation failed")
	case "canceled", "cancelled":
		s.span.SetStatus(codes.Error, "operation canceled")
	case "timeout":
		s.span.SetStatus(codes.Error, "operation timed out")
	default:
		s.span.SetAttributes(attribute.String(tablestore.LogAttrStatus, status))
	}
}

func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

var _ tablestore.SpanContext = (*OTelSpanContext)(nil)
