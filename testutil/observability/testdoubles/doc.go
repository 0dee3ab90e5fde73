// Package testdoubles provides spies for the observability interfaces of the ledger package:
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - TracingCollectorSpy: captures spans with their start and finish attributes
//   - ContextualLoggerSpy: captures context-aware log calls
//   - LogHandlerSpy: captures slog records, for code that logs through *slog.Logger
//
// They let tests verify instrumentation without a telemetry backend.
package testdoubles
