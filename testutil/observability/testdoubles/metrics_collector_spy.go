package testdoubles

import (
	"maps"
	"sync"
	"time"

	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
)

// MetricRecord is one captured metrics call. Duration is set for duration records, Value for value records.
type MetricRecord struct {
	Metric   string
	Duration time.Duration
	Value    float64
	Labels   map[string]string
}

// MetricsCollectorSpy is a ledger.MetricsCollector that captures all calls for inspection in tests.
type MetricsCollectorSpy struct {
	durationRecords []MetricRecord
	counterRecords  []MetricRecord
	valueRecords    []MetricRecord
	mu              sync.Mutex
}

func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = append(s.durationRecords, MetricRecord{Metric: metric, Duration: duration, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counterRecords = append(s.counterRecords, MetricRecord{Metric: metric, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.valueRecords = append(s.valueRecords, MetricRecord{Metric: metric, Value: value, Labels: maps.Clone(labels)})
}

// CounterRecordsFor returns the captured counter increments of the metric.
func (s *MetricsCollectorSpy) CounterRecordsFor(metric string) []MetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return recordsFor(s.counterRecords, metric)
}

// DurationRecordsFor returns the captured durations of the metric.
func (s *MetricsCollectorSpy) DurationRecordsFor(metric string) []MetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return recordsFor(s.durationRecords, metric)
}

// ValueRecordsFor returns the captured values of the metric.
func (s *MetricsCollectorSpy) ValueRecordsFor(metric string) []MetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return recordsFor(s.valueRecords, metric)
}

// LastValueFor returns the most recent value recorded for the metric.
func (s *MetricsCollectorSpy) LastValueFor(metric string) (float64, bool) {
	records := s.ValueRecordsFor(metric)
	if len(records) == 0 {
		return 0, false
	}

	return records[len(records)-1].Value, true
}

// HasCounterRecordWithLabels reports whether the metric was incremented with all the given labels.
func (s *MetricsCollectorSpy) HasCounterRecordWithLabels(metric string, labels map[string]string) bool {
	for _, record := range s.CounterRecordsFor(metric) {
		if containsLabels(record.Labels, labels) {
			return true
		}
	}

	return false
}

// HasDurationRecordWithLabels reports whether a duration of the metric was recorded with all the given labels.
func (s *MetricsCollectorSpy) HasDurationRecordWithLabels(metric string, labels map[string]string) bool {
	for _, record := range s.DurationRecordsFor(metric) {
		if containsLabels(record.Labels, labels) {
			return true
		}
	}

	return false
}

func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = nil
	s.counterRecords = nil
	s.valueRecords = nil
}

func recordsFor(records []MetricRecord, metric string) []MetricRecord {
	found := make([]MetricRecord, 0)

	for _, record := range records {
		if record.Metric == metric {
			found = append(found, record)
		}
	}

	return found
}

func containsLabels(actual, expected map[string]string) bool {
	for key, value := range expected {
		if actual[key] != value {
			return false
		}
	}

	return true
}

var _ ledger.MetricsCollector = (*MetricsCollectorSpy)(nil)
