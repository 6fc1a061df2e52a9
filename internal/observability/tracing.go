// Package observability wraps the probe's OpenTelemetry instrumentation:
// spans for run phases and remote requests, counters for create and delete
// calls and verification checks. With no SDK configured the global noop
// providers make all of it free.
package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies this instrumentation library.
const TracerName = "github.com/nlstn/catalog-probe"

// MeterName identifies the probe's meter.
const MeterName = "github.com/nlstn/catalog-probe"

// Attribute keys used on probe spans and metrics.
const (
	AttrPhase      = "probe.phase"
	AttrEntityKind = "probe.entity_kind"
	AttrOutcome    = "probe.outcome"
	AttrHTTPMethod = "http.request.method"
	AttrHTTPPath   = "url.path"
)

// Tracer wraps an OpenTelemetry tracer with probe-specific span creation.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer from the given provider. A nil provider falls
// back to the global provider, which is a noop unless configured.
func NewTracer(tp trace.TracerProvider) *Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Tracer{tracer: tp.Tracer(TracerName)}
}

// StartPhase starts a span covering one pipeline phase (reset, seed, verify).
func (t *Tracer) StartPhase(ctx context.Context, phase string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "probe."+phase, trace.WithAttributes(
		attribute.String(AttrPhase, phase),
	))
}

// StartRequest starts a span for a single remote HTTP call.
func (t *Tracer) StartRequest(ctx context.Context, method, path string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "probe.request", trace.WithAttributes(
		attribute.String(AttrHTTPMethod, method),
		attribute.String(AttrHTTPPath, path),
	))
}

// EndSpan records err on the span when non-nil and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
