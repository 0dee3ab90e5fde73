// Package promadapters implements ledger.MetricsCollector with the Prometheus client library
// and serves the collected metrics over HTTP.
package promadapters

import (
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
)

const namespace = "cashback"

// MetricsCollector implements ledger.MetricsCollector on a prometheus.Registerer:
//   - RecordDuration -> HistogramVec in seconds
//   - IncrementCounter -> CounterVec
//   - RecordValue -> GaugeVec
//
// A vector is registered on the first call for a metric name, with the label names of that call.
// Later calls with a different label set for the same metric are dropped.
type MetricsCollector struct {
	registerer prometheus.Registerer
	histograms map[string]*prometheus.HistogramVec
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	mu         sync.Mutex
}

func NewMetricsCollector(registerer prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		registerer: registerer,
		histograms: make(map[string]*prometheus.HistogramVec),
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
	}
}

func (m *MetricsCollector) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	vec, ok := m.histograms[metric]
	if !ok {
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      metric,
			Help:      "Ledger operation duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, labelNames(labels))

		if !m.register(vec) {
			return
		}

		m.histograms[metric] = vec
	}

	observer, err := vec.GetMetricWith(labels)
	if err != nil {
		return
	}

	observer.Observe(duration.Seconds())
}

func (m *MetricsCollector) IncrementCounter(metric string, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	vec, ok := m.counters[metric]
	if !ok {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      metric,
			Help:      "Ledger operation counter.",
		}, labelNames(labels))

		if !m.register(vec) {
			return
		}

		m.counters[metric] = vec
	}

	counter, err := vec.GetMetricWith(labels)
	if err != nil {
		return
	}

	counter.Inc()
}

func (m *MetricsCollector) RecordValue(metric string, value float64, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	vec, ok := m.gauges[metric]
	if !ok {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      metric,
			Help:      "Ledger current value.",
		}, labelNames(labels))

		if !m.register(vec) {
			return
		}

		m.gauges[metric] = vec
	}

	gauge, err := vec.GetMetricWith(labels)
	if err != nil {
		return
	}

	gauge.Set(value)
}

func (m *MetricsCollector) register(collector prometheus.Collector) bool {
	return m.registerer.Register(collector) == nil
}

func labelNames(labels map[string]string) []string {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

var _ ledger.MetricsCollector = (*MetricsCollector)(nil)
