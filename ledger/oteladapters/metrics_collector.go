package oteladapters

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
)

// MetricsCollector implements ledger.ContextualMetricsCollector on an OpenTelemetry meter.
// Durations go to Float64Histograms in seconds, counters to Int64Counters, and values to Float64Gauges.
// Instruments are created lazily per metric name and cached. Like the Store, it is not safe for concurrent use.
type MetricsCollector struct {
	meter      metric.Meter
	histograms map[string]metric.Float64Histogram
	counters   map[string]metric.Int64Counter
	gauges     map[string]metric.Float64Gauge
}

func NewMetricsCollector(meter metric.Meter) *MetricsCollector {
	return &MetricsCollector{
		meter:      meter,
		histograms: make(map[string]metric.Float64Histogram),
		counters:   make(map[string]metric.Int64Counter),
		gauges:     make(map[string]metric.Float64Gauge),
	}
}

func (m *MetricsCollector) RecordDuration(name string, duration time.Duration, labels map[string]string) {
	m.RecordDurationContext(context.Background(), name, duration, labels)
}

func (m *MetricsCollector) IncrementCounter(name string, labels map[string]string) {
	m.IncrementCounterContext(context.Background(), name, labels)
}

func (m *MetricsCollector) RecordValue(name string, value float64, labels map[string]string) {
	m.RecordValueContext(context.Background(), name, value, labels)
}

func (m *MetricsCollector) RecordDurationContext(ctx context.Context, name string, d time.Duration, labels map[string]string) {
	histogram, ok := instrument(m.histograms, name, func() (metric.Float64Histogram, error) {
		return m.meter.Float64Histogram(name, metric.WithUnit("s"), metric.WithDescription("Duration of ledger operations"))
	})
	if ok {
		histogram.Record(ctx, d.Seconds(), metric.WithAttributes(toAttributes(labels)...))
	}
}

func (m *MetricsCollector) IncrementCounterContext(ctx context.Context, name string, labels map[string]string) {
	counter, ok := instrument(m.counters, name, func() (metric.Int64Counter, error) {
		return m.meter.Int64Counter(name, metric.WithDescription("Count of ledger operations"))
	})
	if ok {
		counter.Add(ctx, 1, metric.WithAttributes(toAttributes(labels)...))
	}
}

func (m *MetricsCollector) RecordValueContext(ctx context.Context, name string, value float64, labels map[string]string) {
	gauge, ok := instrument(m.gauges, name, func() (metric.Float64Gauge, error) {
		return m.meter.Float64Gauge(name, metric.WithDescription("Last observed ledger value"))
	})
	if ok {
		gauge.Record(ctx, value, metric.WithAttributes(toAttributes(labels)...))
	}
}

// instrument returns the cached instrument for name, creating it on first use.
// A creation error is not cached, so the next call tries again; the measurement is dropped meanwhile.
func instrument[T any](cache map[string]T, name string, create func() (T, error)) (T, bool) {
	if existing, found := cache[name]; found {
		return existing, true
	}

	created, err := create()
	if err != nil {
		return created, false
	}

	cache[name] = created

	return created, true
}

var _ ledger.ContextualMetricsCollector = (*MetricsCollector)(nil)
