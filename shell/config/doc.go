// Package config loads the runtime configuration of the cashback ledger and builds the infrastructure
// that depends on it: the slog logger, the fine policy, and the OpenTelemetry SDK providers.
//
// Configuration comes from an optional TOML file. Every key has a default, so an empty or missing
// file yields a working setup:
//
//	[fine]
//	threshold_months = 3
//	amount = "100"
//
//	[log]
//	level = "info"     # debug, info, warn, error
//	format = "text"    # text, json
//	file = ""          # rotated with lumberjack when set
//
//	[metrics]
//	addr = ""          # e.g. ":9090" serves /metrics and /health
//
//	[tracing]
//	enabled = false
//	endpoint = "localhost:4318"
//	insecure = true
package config
