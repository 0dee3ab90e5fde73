package observable

import (
	"context"

	"github.com/AntonStoeckl/cashback-ledger-go/shell"
)

// CommandWrapper reports every call of a core command handler to the configured collectors.
// Result and error of the wrapped handler are returned unchanged.
type CommandWrapper[C shell.Command] struct {
	coreHandler shell.CoreCommandHandler[C]
	commandType string
	inst        shell.Instrumentation
}

// NewCommandWrapper wraps coreHandler. The command type label is taken from the zero value of C.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CoreCommandHandler[C],
	opts ...CommandOption[C],
) (*CommandWrapper[C], error) {
	var zero C

	w := &CommandWrapper[C]{coreHandler: coreHandler, commandType: zero.CommandType()}

	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// Handle delegates to the wrapped handler.
// Commands rejected by a business rule are recorded with status "rejected" and logged as a warning.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	ctx, observation := w.inst.ObserveCommand(ctx, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	observation.Done(ctx, result.BusinessOutcome, err)

	return result, err
}

// CommandOption configures a CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C]) error

// WithCommandMetrics records call counts and durations per command type.
func WithCommandMetrics[C shell.Command](collector shell.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.inst.Metrics = collector
		return nil
	}
}

// WithCommandTracing opens one span per handled command.
func WithCommandTracing[C shell.Command](collector shell.TracingCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.inst.Tracing = collector
		return nil
	}
}

// WithCommandContextualLogging takes precedence over WithCommandLogging.
func WithCommandContextualLogging[C shell.Command](logger shell.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.inst.ContextualLogger = logger
		return nil
	}
}

// WithCommandLogging logs outcomes without context.
func WithCommandLogging[C shell.Command](logger shell.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.inst.Logger = logger
		return nil
	}
}

// WithCommandInstrumentation replaces all collectors at once.
func WithCommandInstrumentation[C shell.Command](inst shell.Instrumentation) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.inst = inst
		return nil
	}
}
