package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

const (
	defaultFineThresholdMonths = 3
	defaultFineAmount          = "100"
	defaultLogLevel            = "info"
	defaultLogFormat           = "text"
	defaultTracingEndpoint     = "localhost:4318"
	defaultLogMaxSizeMB        = 10
	defaultLogMaxBackups       = 3
)

var (
	// ErrInvalidConfig is joined with every validation failure.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownConfigKeys is returned when the file contains keys this package does not understand.
	ErrUnknownConfigKeys = errors.New("unknown config keys")
)

// Config is the complete runtime configuration.
type Config struct {
	Fine    FineConfig    `toml:"fine"`
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
	Tracing TracingConfig `toml:"tracing"`
}

// FineConfig configures the early cancellation fine.
type FineConfig struct {
	ThresholdMonths int    `toml:"threshold_months"`
	Amount          string `toml:"amount"`
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// MetricsConfig configures the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `toml:"addr"`
}

// TracingConfig configures the OTLP/HTTP exporters for traces and logs.
type TracingConfig struct {
	Enabled  bool   `toml:"enabled"`
	Endpoint string `toml:"endpoint"`
	Insecure bool   `toml:"insecure"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Fine: FineConfig{
			ThresholdMonths: defaultFineThresholdMonths,
			Amount:          defaultFineAmount,
		},
		Log: LogConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Tracing: TracingConfig{
			Endpoint: defaultTracingEndpoint,
			Insecure: true,
		},
	}
}

// Load reads the TOML file at path on top of the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	meta, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config toml: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %v", ErrUnknownConfigKeys, undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every section and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.Fine.ThresholdMonths < 0 {
		errs = append(errs, fmt.Errorf("fine.threshold_months must not be negative, got %d", c.Fine.ThresholdMonths))
	}

	if _, err := core.MoneyFromString(c.Fine.Amount); err != nil {
		errs = append(errs, fmt.Errorf("fine.amount %q is not a decimal", c.Fine.Amount))
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	if !slices.Contains([]string{"text", "json"}, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format %q is not one of text, json", c.Log.Format))
	}

	if c.Tracing.Enabled && strings.TrimSpace(c.Tracing.Endpoint) == "" {
		errs = append(errs, errors.New("tracing.endpoint is required when tracing is enabled"))
	}

	if len(errs) == 0 {
		return nil
	}

	return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
}

// FinePolicy converts the fine section into the policy used when canceling contracts.
func (c Config) FinePolicy() (core.FinePolicy, error) {
	amount, err := core.MoneyFromString(c.Fine.Amount)
	if err != nil {
		return core.FinePolicy{}, errors.Join(ErrInvalidConfig, err)
	}

	return core.FinePolicy{
		ThresholdMonths: c.Fine.ThresholdMonths,
		Amount:          amount,
	}, nil
}
