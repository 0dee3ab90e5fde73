package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"golang.org/x/term"

	"github.com/AntonStoeckl/cashback-ledger-go/ledger/oteladapters"
	"github.com/AntonStoeckl/cashback-ledger-go/ledger/promadapters"
	"github.com/AntonStoeckl/cashback-ledger-go/shell/config"
)

const shutdownTimeout = 5 * time.Second

type rootFlags struct {
	configPath  string
	logLevel    string
	logFormat   string
	logFile     string
	metricsAddr string
	tracing     bool
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "cashbackledger",
		Short: "Interactive cashback and contract ledger",
		Long: `Runs a ledger session: customers sign and cancel contracts, buy products,
earn 10% cashback on every purchase, and request payouts from their balance.
The session state lives in memory only and is gone when the program exits.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWithLedger(ctx, cfg, errOut, func(ctx context.Context, a *app) error {
				return newSession(a, in, out, isInteractive(in), time.Now).run(ctx)
			})
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a TOML config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: text, json")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this rotating file instead of stderr")
	cmd.PersistentFlags().StringVar(&flags.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	cmd.PersistentFlags().BoolVar(&flags.tracing, "tracing", false, "Export traces, metrics, and logs over OTLP/HTTP")

	cmd.AddCommand(newSimulateCommand(flags, out, errOut))

	return cmd
}

// loadConfig reads the config file and applies the flags that were set explicitly.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}

	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}

	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = flags.logFile
	}

	if cmd.Flags().Changed("metrics-addr") {
		cfg.Metrics.Addr = flags.metricsAddr
	}

	if cmd.Flags().Changed("tracing") {
		cfg.Tracing.Enabled = flags.tracing
	}

	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// runWithLedger sets up logging, telemetry, and the metrics endpoint as configured, builds the ledger app,
// and hands it to run. Everything set up here is flushed and closed when run returns.
func runWithLedger(ctx context.Context, cfg config.Config, errOut io.Writer, run func(context.Context, *app) error) (err error) {
	logger, logCloser := config.NewLogger(cfg.Log, errOut)
	defer func() {
		err = errors.Join(err, logCloser.Close())
	}()

	finePolicy, err := cfg.FinePolicy()
	if err != nil {
		return err
	}

	o := observability{logger: logger}

	if cfg.Tracing.Enabled {
		telemetry, setupErr := config.SetupTelemetry(ctx, cfg.Tracing)
		if setupErr != nil {
			logger.Warn("telemetry setup incomplete", "error", setupErr.Error())
		}

		if telemetry != nil {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				err = errors.Join(err, telemetry.Shutdown(shutdownCtx))
			}()
		}

		o.tracing = oteladapters.NewTracingCollector(otel.Tracer(config.ServiceName))
		o.metrics = oteladapters.NewMetricsCollector(otel.Meter(config.ServiceName))
		o.contextualLogger = oteladapters.NewSlogBridgeLogger(config.ServiceName)
	}

	if cfg.Metrics.Addr != "" {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		o.metrics = promadapters.NewMetricsCollector(registry)

		server, serveErr := startMetricsServer(cfg.Metrics.Addr, registry, logger)
		if serveErr != nil {
			return serveErr
		}

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			err = errors.Join(err, server.shutdown(shutdownCtx))
		}()
	}

	a, err := newApp(finePolicy, o)
	if err != nil {
		return fmt.Errorf("failed to set up ledger: %w", err)
	}

	logger.Info("ledger session started",
		slog.String("session_id", a.store.SessionID().String()),
		slog.Bool("tracing", cfg.Tracing.Enabled),
		slog.String("metrics_addr", cfg.Metrics.Addr),
	)

	return run(ctx, a)
}

func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
