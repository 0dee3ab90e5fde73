package observable

import (
	"context"

	"github.com/AntonStoeckl/cashback-ledger-go/shell"
)

// QueryWrapper is the query counterpart of CommandWrapper.
// Cancellation and deadline errors are counted separately from failures.
type QueryWrapper[Q shell.Query, R any] struct {
	coreHandler shell.CoreQueryHandler[Q, R]
	queryType   string
	inst        shell.Instrumentation
}

// NewQueryWrapper wraps coreHandler. The query type label is taken from the zero value of Q.
func NewQueryWrapper[Q shell.Query, R any](
	coreHandler shell.CoreQueryHandler[Q, R],
	opts ...QueryOption[Q, R],
) (*QueryWrapper[Q, R], error) {
	var zero Q

	w := &QueryWrapper[Q, R]{coreHandler: coreHandler, queryType: zero.QueryType()}

	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// Handle delegates to the wrapped handler and returns its result unchanged.
func (w *QueryWrapper[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	ctx, observation := w.inst.ObserveQuery(ctx, w.queryType)

	result, err := w.coreHandler.Handle(ctx, query)
	observation.Done(ctx, "", err)

	return result, err
}

// QueryOption configures a QueryWrapper.
type QueryOption[Q shell.Query, R any] func(*QueryWrapper[Q, R]) error

// WithQueryMetrics records call counts and durations per query type.
func WithQueryMetrics[Q shell.Query, R any](collector shell.MetricsCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.inst.Metrics = collector
		return nil
	}
}

// WithQueryTracing opens one span per handled query.
func WithQueryTracing[Q shell.Query, R any](collector shell.TracingCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.inst.Tracing = collector
		return nil
	}
}

// WithQueryContextualLogging takes precedence over WithQueryLogging.
func WithQueryContextualLogging[Q shell.Query, R any](logger shell.ContextualLogger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.inst.ContextualLogger = logger
		return nil
	}
}

// WithQueryLogging logs outcomes without context.
func WithQueryLogging[Q shell.Query, R any](logger shell.Logger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.inst.Logger = logger
		return nil
	}
}

// WithQueryInstrumentation replaces all collectors at once.
func WithQueryInstrumentation[Q shell.Query, R any](inst shell.Instrumentation) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.inst = inst
		return nil
	}
}
