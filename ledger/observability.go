package ledger

import (
	"context"
	"time"
)

// The Store and the handler wrappers in shell report through these interfaces only.
// *slog.Logger already fits both logger interfaces. ledger/oteladapters and ledger/promadapters
// implement the collectors on top of OpenTelemetry and Prometheus.

// Logger receives records that carry no request context, e.g. from a session without tracing.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger receives records together with the dispatch or handler context,
// so trace and span ids can be attached. It wins over Logger when both are set.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector takes the ledger's measurements by metric name: dispatch and handler durations,
// call and rejection counters, and values such as the journal length.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector lets exemplars follow the active span.
// Callers type-assert for it and fall back to MetricsCollector.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext is the handle of one dispatch or handler span.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector opens a span per dispatched action or handled request and closes it with
// the outcome status ("success", "error", "rejected", "canceled", "timeout").
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}
