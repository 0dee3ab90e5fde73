package ledger

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// Metric names recorded by the Store.
const (
	MetricDispatchDuration    = "ledger_dispatch_duration_seconds"
	MetricDispatchCalls       = "ledger_dispatch_calls_total"
	MetricQueryDuration       = "ledger_query_duration_seconds"
	MetricActionsQueried      = "ledger_actions_queried"
	MetricCashRegisterBalance = "ledger_cash_register_balance"
	MetricJournalLength       = "ledger_journal_length"
	MetricLedgerErrors        = "ledger_errors_total"
)

// Span names, attribute keys, and label values used by the Store.
const (
	SpanNameDispatch = "ledger.dispatch"
	SpanNameQuery    = "ledger.query"

	StatusSuccess = "success"
	StatusError   = "error"

	spanAttrOperation      = "operation"
	spanAttrActionType     = "action.type"
	spanAttrSequenceNumber = "journal.sequence_number"
	spanAttrActionCount    = "journal.action_count"
	spanAttrMaxSequence    = "journal.max_sequence_number"
	spanAttrErrorType      = "error.type"
	spanAttrDurationMS     = "duration_ms"

	labelOperation  = "operation"
	labelActionType = "action_type"
	labelStatus     = "status"
	labelErrorType  = "error_type"

	operationDispatch = "dispatch"
	operationQuery    = "query"

	errorTypeCanceled   = "context_canceled"
	errorTypeJournaling = "journaling_failed"
	errorTypeFilter     = "filter_failed"
	errorTypeMessageID  = "message_id_failed"
)

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// === Logging ===

// logDebugContext prefers the contextual logger and falls back to the plain one.
func (s *Store) logDebugContext(ctx context.Context, msg string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Store) logInfoContext(ctx context.Context, msg string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Store) logErrorContext(ctx context.Context, msg string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, msg, allArgs...)
		return
	}

	if s.logger != nil {
		s.logger.Error(msg, allArgs...)
	}
}

// === Metrics ===

// recordDurationContext records a duration with context if the collector supports it.
func (s *Store) recordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	s.metricsCollector.RecordDuration(metric, duration, labels)
}

// incrementCounterContext increments a counter with context if the collector supports it.
func (s *Store) incrementCounterContext(ctx context.Context, metric string, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	s.metricsCollector.IncrementCounter(metric, labels)
}

// recordValueContext records a value with context if the collector supports it.
func (s *Store) recordValueContext(ctx context.Context, metric string, value float64, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
		return
	}

	s.metricsCollector.RecordValue(metric, value, labels)
}

// dispatchMetricsObserver encapsulates the metrics collection for dispatch operations.
type dispatchMetricsObserver struct {
	s          *Store
	ctx        context.Context
	actionType string
}

func (s *Store) startDispatchMetrics(ctx context.Context, action core.Action) *dispatchMetricsObserver {
	return &dispatchMetricsObserver{s: s, ctx: ctx, actionType: action.ActionType()}
}

func (o *dispatchMetricsObserver) labels(status string) map[string]string {
	return map[string]string{
		labelOperation:  operationDispatch,
		labelActionType: o.actionType,
		labelStatus:     status,
	}
}

// recordSuccess records the call, its duration, the cash register balance, and the journal length.
func (o *dispatchMetricsObserver) recordSuccess(cash core.Money, journalLength int, duration time.Duration) {
	o.s.recordDurationContext(o.ctx, MetricDispatchDuration, duration, o.labels(StatusSuccess))
	o.s.incrementCounterContext(o.ctx, MetricDispatchCalls, o.labels(StatusSuccess))
	o.s.recordValueContext(o.ctx, MetricCashRegisterBalance, cash.InexactFloat64(), map[string]string{})
	o.s.recordValueContext(o.ctx, MetricJournalLength, float64(journalLength), map[string]string{})
}

func (o *dispatchMetricsObserver) recordError(errorType string, duration time.Duration) {
	o.s.recordDurationContext(o.ctx, MetricDispatchDuration, duration, o.labels(StatusError))
	o.s.incrementCounterContext(o.ctx, MetricDispatchCalls, o.labels(StatusError))
	o.s.incrementCounterContext(o.ctx, MetricLedgerErrors, map[string]string{
		labelOperation: operationDispatch,
		labelErrorType: errorType,
	})
}

// queryMetricsObserver encapsulates the metrics collection for query operations.
type queryMetricsObserver struct {
	s   *Store
	ctx context.Context
}

func (s *Store) startQueryMetrics(ctx context.Context) *queryMetricsObserver {
	return &queryMetricsObserver{s: s, ctx: ctx}
}

func (o *queryMetricsObserver) recordSuccess(actionCount int, duration time.Duration) {
	labels := map[string]string{labelOperation: operationQuery, labelStatus: StatusSuccess}
	o.s.recordDurationContext(o.ctx, MetricQueryDuration, duration, labels)
	o.s.recordValueContext(o.ctx, MetricActionsQueried, float64(actionCount), labels)
}

func (o *queryMetricsObserver) recordError(errorType string, duration time.Duration) {
	o.s.recordDurationContext(o.ctx, MetricQueryDuration, duration, map[string]string{
		labelOperation: operationQuery,
		labelStatus:    StatusError,
	})
	o.s.incrementCounterContext(o.ctx, MetricLedgerErrors, map[string]string{
		labelOperation: operationQuery,
		labelErrorType: errorType,
	})
}

// === Tracing ===

func formatDuration(duration time.Duration) string {
	return fmt.Sprintf("%.2f", toMilliseconds(duration))
}

// tracingObserver encapsulates tracing span lifecycle management for one Store operation.
type tracingObserver struct {
	s    *Store
	span SpanContext
}

func (s *Store) startTracing(ctx context.Context, name string, attrs map[string]string) (*tracingObserver, context.Context) {
	if s.tracingCollector == nil {
		return &tracingObserver{s: s}, ctx
	}

	newCtx, span := s.tracingCollector.StartSpan(ctx, name, attrs)

	return &tracingObserver{s: s, span: span}, newCtx
}

func (s *Store) startDispatchTracing(ctx context.Context, action core.Action) (*tracingObserver, context.Context) {
	return s.startTracing(ctx, SpanNameDispatch, map[string]string{
		spanAttrOperation:  operationDispatch,
		spanAttrActionType: action.ActionType(),
	})
}

func (s *Store) startQueryTracing(ctx context.Context) (*tracingObserver, context.Context) {
	return s.startTracing(ctx, SpanNameQuery, map[string]string{
		spanAttrOperation: operationQuery,
	})
}

func (o *tracingObserver) finish(status string, attrs map[string]string) {
	if o.span == nil {
		return
	}

	o.span.SetStatus(status)
	for key, value := range attrs {
		o.span.AddAttribute(key, value)
	}

	o.s.tracingCollector.FinishSpan(o.span, status, attrs)
}

func (o *tracingObserver) finishError(errorType string, duration time.Duration) {
	o.finish(StatusError, map[string]string{
		spanAttrErrorType:  errorType,
		spanAttrDurationMS: formatDuration(duration),
	})
}

func (o *tracingObserver) finishSuccess(sequenceNumber uint, duration time.Duration) {
	o.finish(StatusSuccess, map[string]string{
		spanAttrSequenceNumber: fmt.Sprintf("%d", sequenceNumber),
		spanAttrDurationMS:     formatDuration(duration),
	})
}

func (o *tracingObserver) finishQuerySuccess(actionCount int, maxSequenceNumber MaxSequenceNumberUint, duration time.Duration) {
	o.finish(StatusSuccess, map[string]string{
		spanAttrActionCount: fmt.Sprintf("%d", actionCount),
		spanAttrMaxSequence: fmt.Sprintf("%d", maxSequenceNumber),
		spanAttrDurationMS:  formatDuration(duration),
	})
}
