// Package oteladapters implements the observability interfaces of the ledger package with OpenTelemetry:
//   - TracingCollector: spans via the OpenTelemetry trace API
//   - MetricsCollector: histograms, counters, and gauges via the OpenTelemetry metric API
//   - SlogBridgeLogger and OTelLogger: context-aware logging with trace correlation
//
// The adapters only depend on the API packages, the SDK setup stays with the application.
package oteladapters
