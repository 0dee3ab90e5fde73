package shell

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
)

// Metric names. Durations are recorded in seconds.
const (
	CommandHandlerDurationMetric = "commandhandler_handle_duration_seconds"
	CommandHandlerCallsMetric    = "commandhandler_handle_calls_total"
	CommandHandlerRejectedMetric = "commandhandler_rejected_operations_total"
	CommandHandlerOutcomesMetric = "commandhandler_business_outcomes_total"
	QueryHandlerDurationMetric   = "queryhandler_handle_duration_seconds"
	QueryHandlerCallsMetric      = "queryhandler_handle_calls_total"
	QueryHandlerCanceledMetric   = "queryhandler_canceled_operations_total"
)

// Status labels of a handler call, see StatusFor.
const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusRejected = "rejected" // a business rule violation, not a failure
	StatusCanceled = "canceled"
	StatusTimeout  = "timeout"
)

const (
	LogMsgCommandStarted   = "command handler started"
	LogMsgCommandCompleted = "command handler completed"
	LogMsgCommandRejected  = "command handler rejected command"
	LogMsgCommandFailed    = "command handler failed"
	LogMsgQueryStarted     = "query handler started"
	LogMsgQueryCompleted   = "query handler completed"
	LogMsgQueryFailed      = "query handler failed"
)

// Attribute keys shared by logs, metric labels, and span attributes.
const (
	LogAttrCommandType     = "command_type"
	LogAttrQueryType       = "query_type"
	LogAttrStatus          = "status"
	LogAttrDurationMS      = "duration_ms"
	LogAttrBusinessOutcome = "business_outcome"
	LogAttrError           = "error"
)

const (
	SpanNameCommandHandle = "commandhandler.handle"
	SpanNameQueryHandle   = "queryhandler.handle"
)

// The handler layer reports through the ledger's observability interfaces, so one adapter serves both.
type (
	MetricsCollector           = ledger.MetricsCollector
	ContextualMetricsCollector = ledger.ContextualMetricsCollector
	TracingCollector           = ledger.TracingCollector
	SpanContext                = ledger.SpanContext
	ContextualLogger           = ledger.ContextualLogger
	Logger                     = ledger.Logger
)

// Instrumentation is the set of collectors a handler reports to. Every field is optional.
// When both loggers are set, ContextualLogger wins.
type Instrumentation struct {
	Logger           Logger
	ContextualLogger ContextualLogger
	Metrics          MetricsCollector
	Tracing          TracingCollector
}

// handlerKind holds the signal names that differ between command and query handlers.
type handlerKind struct {
	typeAttr       string
	spanName       string
	durationMetric string
	callsMetric    string
	msgStarted     string
	msgCompleted   string
	msgFailed      string
}

var (
	commandKind = handlerKind{
		typeAttr:       LogAttrCommandType,
		spanName:       SpanNameCommandHandle,
		durationMetric: CommandHandlerDurationMetric,
		callsMetric:    CommandHandlerCallsMetric,
		msgStarted:     LogMsgCommandStarted,
		msgCompleted:   LogMsgCommandCompleted,
		msgFailed:      LogMsgCommandFailed,
	}

	queryKind = handlerKind{
		typeAttr:       LogAttrQueryType,
		spanName:       SpanNameQueryHandle,
		durationMetric: QueryHandlerDurationMetric,
		callsMetric:    QueryHandlerCallsMetric,
		msgStarted:     LogMsgQueryStarted,
		msgCompleted:   LogMsgQueryCompleted,
		msgFailed:      LogMsgQueryFailed,
	}
)

// Observation tracks one handler call from ObserveCommand or ObserveQuery until Done.
type Observation struct {
	inst     Instrumentation
	kind     handlerKind
	typeName string
	start    time.Time
	span     SpanContext
}

// ObserveCommand opens a span and logs the start of a command.
// The returned context carries the span and must be passed to the handler.
func (i Instrumentation) ObserveCommand(ctx context.Context, commandType string) (context.Context, *Observation) {
	return i.observe(ctx, commandKind, commandType)
}

// ObserveQuery opens a span and logs the start of a query.
func (i Instrumentation) ObserveQuery(ctx context.Context, queryType string) (context.Context, *Observation) {
	return i.observe(ctx, queryKind, queryType)
}

func (i Instrumentation) observe(ctx context.Context, kind handlerKind, typeName string) (context.Context, *Observation) {
	o := &Observation{inst: i, kind: kind, typeName: typeName, start: time.Now()}

	if i.Tracing != nil {
		ctx, o.span = i.Tracing.StartSpan(ctx, kind.spanName, map[string]string{kind.typeAttr: typeName})
	}

	o.log(ctx, "debug", kind.msgStarted, kind.typeAttr, typeName)

	return ctx, o
}

// Done records metrics, closes the span, and logs the outcome of the call.
// A business rule violation is logged as a warning with status "rejected".
// businessOutcome is only reported for successful commands.
func (o *Observation) Done(ctx context.Context, businessOutcome string, err error) {
	duration := time.Since(o.start)
	status := StatusFor(err)

	o.recordMetrics(ctx, status, businessOutcome, duration)
	o.finishSpan(status, duration, err)

	switch {
	case err == nil && o.kind == commandKind:
		o.log(ctx, "info", o.kind.msgCompleted,
			o.kind.typeAttr, o.typeName,
			LogAttrBusinessOutcome, businessOutcome,
			LogAttrDurationMS, ToMilliseconds(duration),
		)
	case err == nil:
		o.log(ctx, "info", o.kind.msgCompleted, o.kind.typeAttr, o.typeName, LogAttrDurationMS, ToMilliseconds(duration))
	case status == StatusRejected:
		o.log(ctx, "warn", LogMsgCommandRejected, o.kind.typeAttr, o.typeName, LogAttrError, err.Error())
	default:
		o.log(ctx, "error", o.kind.msgFailed, o.kind.typeAttr, o.typeName, LogAttrError, err.Error())
	}
}

func (o *Observation) recordMetrics(ctx context.Context, status, businessOutcome string, duration time.Duration) {
	collector := o.inst.Metrics
	if collector == nil {
		return
	}

	labels := map[string]string{o.kind.typeAttr: o.typeName, LogAttrStatus: status}
	recordDuration(ctx, collector, o.kind.durationMetric, duration, labels)
	incrementCounter(ctx, collector, o.kind.callsMetric, labels)

	switch {
	case o.kind == commandKind && status == StatusRejected:
		incrementCounter(ctx, collector, CommandHandlerRejectedMetric, labels)
	case o.kind == commandKind && status == StatusSuccess && businessOutcome != "":
		incrementCounter(ctx, collector, CommandHandlerOutcomesMetric, map[string]string{
			LogAttrCommandType:     o.typeName,
			LogAttrBusinessOutcome: businessOutcome,
		})
	case o.kind == queryKind && (status == StatusCanceled || status == StatusTimeout):
		incrementCounter(ctx, collector, QueryHandlerCanceledMetric, labels)
	}
}

func (o *Observation) finishSpan(status string, duration time.Duration, err error) {
	if o.inst.Tracing == nil || o.span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: fmt.Sprintf("%.2f", ToMilliseconds(duration)),
	}
	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	o.inst.Tracing.FinishSpan(o.span, status, attrs)
}

func (o *Observation) log(ctx context.Context, level, msg string, args ...any) {
	if cl := o.inst.ContextualLogger; cl != nil {
		switch level {
		case "debug":
			cl.DebugContext(ctx, msg, args...)
		case "info":
			cl.InfoContext(ctx, msg, args...)
		case "warn":
			cl.WarnContext(ctx, msg, args...)
		default:
			cl.ErrorContext(ctx, msg, args...)
		}

		return
	}

	if l := o.inst.Logger; l != nil {
		switch level {
		case "debug":
			l.Debug(msg, args...)
		case "info":
			l.Info(msg, args...)
		case "warn":
			l.Warn(msg, args...)
		default:
			l.Error(msg, args...)
		}
	}
}

func recordDuration(ctx context.Context, collector MetricsCollector, metric string, d time.Duration, labels map[string]string) {
	if contextual, ok := collector.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metric, d, labels)
		return
	}

	collector.RecordDuration(metric, d, labels)
}

func incrementCounter(ctx context.Context, collector MetricsCollector, metric string, labels map[string]string) {
	if contextual, ok := collector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metric, labels)
		return
	}

	collector.IncrementCounter(metric, labels)
}

// ToMilliseconds converts a duration to fractional milliseconds.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// StatusFor classifies an error returned by a handler into a status label.
func StatusFor(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case IsBusinessRuleViolation(err):
		return StatusRejected
	case errors.Is(err, context.Canceled):
		return StatusCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	default:
		return StatusError
	}
}
