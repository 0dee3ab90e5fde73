// Package config provides in-memory OpenTelemetry providers for tests.
//
// Spans are kept in a tracetest.InMemoryExporter and metrics are collected on demand through a
// sdkmetric.ManualReader, so tests can verify what the ledger and its handlers emit without an OTLP collector.
package config
