package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DispatchMetrics counts outbound deliveries by target and outcome.
type DispatchMetrics struct {
	dispatches metric.Int64Counter
}

// NewDispatchMetrics creates the counters on provider, or on the global
// meter provider when provider is nil.
func NewDispatchMetrics(provider metric.MeterProvider) (*DispatchMetrics, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(instrumentationName + "/dispatch")
	counter, err := meter.Int64Counter(
		"outbound.dispatch.count",
		metric.WithDescription("Outbound conversion and lead deliveries by outcome"),
	)
	if err != nil {
		return nil, err
	}
	return &DispatchMetrics{dispatches: counter}, nil
}

// Record is safe on a nil receiver.
func (m *DispatchMetrics) Record(ctx context.Context, target, eventName, outcome string) {
	if m == nil {
		return
	}
	m.dispatches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("target", target),
		attribute.String("event_name", eventName),
		attribute.String("outcome", outcome),
	))
}
