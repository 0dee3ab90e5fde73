// Package observable provides wrappers that instrument command and query handlers with metrics,
// tracing, and logging while the handlers themselves stay free of infrastructure concerns.
//
// The wrappers are applied at wiring time, not hidden inside factory functions:
//
//	coreHandler := requestcashback.NewCommandHandler(store)
//
//	handler, err := observable.NewCommandWrapper[requestcashback.Command](
//		coreHandler,
//		observable.WithCommandMetrics[requestcashback.Command](metricsCollector),
//		observable.WithCommandTracing[requestcashback.Command](tracingCollector),
//		observable.WithCommandContextualLogging[requestcashback.Command](contextualLogger),
//	)
//
//	result, err := handler.Handle(ctx, command)
//
// Tests that only care about business rules use the core handlers directly.
package observable
