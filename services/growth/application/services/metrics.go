package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/ghuser/growthtrack/services/growth"

type controllerMetrics struct {
	added    metric.Int64Counter
	deleted  metric.Int64Counter
	rejected metric.Int64Counter
}

// newControllerMetrics registers counters on the global meter provider.
// Registration errors fall back to no-op instruments.
func newControllerMetrics() *controllerMetrics {
	meter := otel.Meter(meterName)
	return &controllerMetrics{
		added:    counter(meter, "growth.records.added", "Growth records added"),
		deleted:  counter(meter, "growth.records.deleted", "Growth records deleted"),
		rejected: counter(meter, "growth.records.rejected", "Add attempts rejected by validation or persistence"),
	}
}

func counter(meter metric.Meter, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		c, _ = noop.NewMeterProvider().Meter(meterName).Int64Counter(name)
	}
	return c
}

func (m *controllerMetrics) reject(ctx context.Context, reason string) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
