package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the probe's metric instruments.
type Metrics struct {
	createCount metric.Int64Counter
	deleteCount metric.Int64Counter
	checkCount  metric.Int64Counter
}

// NewMetrics creates the probe's instruments from the given provider.
// A nil provider falls back to the global provider.
func NewMetrics(mp metric.MeterProvider) *Metrics {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	// Instrument creation only fails on invalid parameters; fall back to a
	// bare instrument so callers never need to nil-check.
	var err error
	m.createCount, err = meter.Int64Counter(
		"probe.create.count",
		metric.WithDescription("Remote create calls issued, by entity kind and outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		m.createCount, _ = meter.Int64Counter("probe.create.count")
	}

	m.deleteCount, err = meter.Int64Counter(
		"probe.delete.count",
		metric.WithDescription("Remote delete calls issued, by entity kind and outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		m.deleteCount, _ = meter.Int64Counter("probe.delete.count")
	}

	m.checkCount, err = meter.Int64Counter(
		"probe.check.count",
		metric.WithDescription("Verification checks executed, by outcome"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		m.checkCount, _ = meter.Int64Counter("probe.check.count")
	}

	return m
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

// RecordCreate counts one remote create call.
func (m *Metrics) RecordCreate(ctx context.Context, kind string, ok bool) {
	m.createCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrEntityKind, kind),
		attribute.String(AttrOutcome, outcome(ok)),
	))
}

// RecordDelete counts one remote delete call.
func (m *Metrics) RecordDelete(ctx context.Context, kind string, ok bool) {
	m.deleteCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrEntityKind, kind),
		attribute.String(AttrOutcome, outcome(ok)),
	))
}

// RecordCheck counts one verification check with its result status.
func (m *Metrics) RecordCheck(ctx context.Context, status string) {
	m.checkCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrOutcome, status),
	))
}
