package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"math/rand"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/cancelcontract"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/createcontract"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/purchaseproduct"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/requestcashback"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/actionlog"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/cashbackbalance"
)

const (
	defaultSimulationSteps     = 1000
	defaultSimulationSeed      = 1
	defaultSimulationCustomers = 20
	defaultErrorRate           = 2.0
)

var simulationStart = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

var products = []string{"Coffee Beans", "Desk Lamp", "Headphones", "Notebook", "Running Shoes", "Tea Set"}

// scenarioType represents the kinds of operations the simulation executes.
type scenarioType string

const (
	scenarioSignContract    scenarioType = "sign_contract"
	scenarioCancelContract  scenarioType = "cancel_contract"
	scenarioPurchase        scenarioType = "purchase_product"
	scenarioRequestCashback scenarioType = "request_cashback"
	scenarioCheckBalance    scenarioType = "check_balance"
)

// scenarioOrder fixes the iteration order of the weights, so a seed always yields the same run.
var scenarioOrder = []scenarioType{
	scenarioSignContract,
	scenarioCancelContract,
	scenarioPurchase,
	scenarioRequestCashback,
	scenarioCheckBalance,
}

type simulationConfig struct {
	Steps     int
	Seed      int64
	Customers int
	ErrorRate float64 // percent of cancellations aimed at customers without a contract
}

func (c simulationConfig) validate() error {
	var errs []error

	if c.Steps <= 0 {
		errs = append(errs, fmt.Errorf("steps must be positive, got %d", c.Steps))
	}

	if c.Customers <= 0 {
		errs = append(errs, fmt.Errorf("customers must be positive, got %d", c.Customers))
	}

	if c.ErrorRate < 0 || c.ErrorRate > 100 {
		errs = append(errs, fmt.Errorf("error rate %.2f out of range [0, 100]", c.ErrorRate))
	}

	return errors.Join(errs...)
}

func newSimulateCommand(flags *rootFlags, out, errOut io.Writer) *cobra.Command {
	simCfg := simulationConfig{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Drive a ledger with generated customer traffic and print a summary",
		Long: `Runs a reproducible stream of contract signings, cancellations, purchases, cashback requests,
and balance checks against a fresh ledger. Combined with --metrics-addr or --tracing it produces
telemetry without typing into the menu.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := simCfg.validate(); err != nil {
				return err
			}

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWithLedger(ctx, cfg, errOut, func(ctx context.Context, a *app) error {
				return newSimulation(a, simCfg).run(ctx, out)
			})
		},
	}

	cmd.Flags().IntVar(&simCfg.Steps, "steps", defaultSimulationSteps, "Number of operations to execute")
	cmd.Flags().Int64Var(&simCfg.Seed, "seed", defaultSimulationSeed, "Random seed, the same seed yields the same run")
	cmd.Flags().IntVar(&simCfg.Customers, "customers", defaultSimulationCustomers, "Number of distinct customers")
	cmd.Flags().Float64Var(&simCfg.ErrorRate, "error-rate", defaultErrorRate, "Percent of cancellations aimed at customers without a contract")

	return cmd
}

type simulationStats struct {
	executed map[scenarioType]int
	rejected int
}

// simulation drives the ledger with random but reproducible customer traffic.
// The clock advances one day per step, so both early and late cancellations occur.
type simulation struct {
	app       *app
	cfg       simulationConfig
	rng       *rand.Rand
	customers []core.CustomerNameString
	clock     time.Time
	stats     simulationStats
}

func newSimulation(a *app, cfg simulationConfig) *simulation {
	customers := make([]core.CustomerNameString, 0, cfg.Customers)
	for i := 1; i <= cfg.Customers; i++ {
		customers = append(customers, fmt.Sprintf("customer-%03d", i))
	}

	return &simulation{
		app:       a,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(cfg.Seed)), //nolint:gosec // simulation traffic
		customers: customers,
		clock:     simulationStart,
		stats:     simulationStats{executed: make(map[scenarioType]int)},
	}
}

func (s *simulation) run(ctx context.Context, out io.Writer) error {
	for step := 0; step < s.cfg.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		scenario := s.selectScenario()

		if err := s.execute(ctx, scenario); err != nil {
			return fmt.Errorf("step %d (%s): %w", step+1, scenario, err)
		}

		s.stats.executed[scenario]++
		s.clock = s.clock.AddDate(0, 0, 1)
	}

	return s.report(ctx, out)
}

// selectScenario weighs the scenarios by what the current state allows.
func (s *simulation) selectScenario() scenarioType {
	state := s.app.store.GetState()
	weights := make(map[scenarioType]int)

	switch {
	case len(state.Contracts) < len(s.customers)/2:
		weights[scenarioSignContract] = 20
	case len(state.Contracts) < len(s.customers):
		weights[scenarioSignContract] = 5
	}

	if len(state.Contracts) > 0 {
		weights[scenarioCancelContract] = 3
	}

	weights[scenarioPurchase] = 60

	if len(state.CashbackBalances) > 0 {
		weights[scenarioRequestCashback] = 15
		weights[scenarioCheckBalance] = 10
	}

	return s.selectWeightedScenario(weights)
}

func (s *simulation) selectWeightedScenario(weights map[scenarioType]int) scenarioType {
	totalWeight := 0
	for _, weight := range weights {
		totalWeight += weight
	}

	r := s.rng.Intn(totalWeight)
	currentWeight := 0

	for _, scenario := range scenarioOrder {
		currentWeight += weights[scenario]
		if r < currentWeight {
			return scenario
		}
	}

	return scenarioPurchase
}

func (s *simulation) execute(ctx context.Context, scenario scenarioType) error {
	switch scenario {
	case scenarioSignContract:
		fee := core.MoneyFromInt(int64(50 + s.rng.Intn(101)))
		_, err := s.app.createContract.Handle(ctx, createcontract.BuildCommand(s.randomCustomer(), fee, s.clock))
		return err

	case scenarioCancelContract:
		_, err := s.app.cancelContract.Handle(ctx, cancelcontract.BuildCommand(s.cancellationTarget(), s.clock))
		if errors.Is(err, cancelcontract.ErrContractNotFound) {
			s.stats.rejected++
			return nil
		}
		return err

	case scenarioPurchase:
		amount := core.MoneyFromInt(int64(5 + s.rng.Intn(196)))
		product := products[s.rng.Intn(len(products))]
		_, err := s.app.purchaseProduct.Handle(ctx, purchaseproduct.BuildCommand(s.randomCustomer(), product, amount, s.clock))
		return err

	case scenarioRequestCashback:
		amount := core.MoneyFromInt(int64(1 + s.rng.Intn(30)))
		_, err := s.app.requestCashback.Handle(ctx, requestcashback.BuildCommand(s.randomCustomer(), amount, s.clock))
		return err

	case scenarioCheckBalance:
		_, err := s.app.cashbackBalance.Handle(ctx, cashbackbalance.BuildQuery(s.randomCustomer()))
		return err

	default:
		return fmt.Errorf("unknown scenario %q", scenario)
	}
}

// cancellationTarget usually picks a contract holder; at ErrorRate percent it picks a random customer instead,
// who may not hold a contract.
func (s *simulation) cancellationTarget() core.CustomerNameString {
	contracts := s.app.store.GetState().Contracts
	if len(contracts) == 0 || s.rng.Float64()*100 < s.cfg.ErrorRate {
		return s.randomCustomer()
	}

	return contracts[s.rng.Intn(len(contracts))].CustomerName
}

func (s *simulation) randomCustomer() core.CustomerNameString {
	return s.customers[s.rng.Intn(len(s.customers))]
}

func (s *simulation) report(ctx context.Context, out io.Writer) error {
	journal, err := s.app.actionLog.Handle(ctx, actionlog.BuildQuery())
	if err != nil {
		return err
	}

	state := s.app.store.GetState()

	fulfilled, notFulfilled := 0, 0
	for _, requests := range state.CashbackHistory {
		for _, request := range requests {
			if request.Status == core.RequestFulfilled {
				fulfilled++
			} else {
				notFulfilled++
			}
		}
	}

	_, _ = fmt.Fprintf(out, "Simulated %d steps from %s to %s (seed %d)\n",
		s.cfg.Steps, simulationStart.Format(dateLayout), s.clock.Format(dateLayout), s.cfg.Seed)

	for _, scenario := range slices.Sorted(maps.Keys(s.stats.executed)) {
		_, _ = fmt.Fprintf(out, "  %-18s %d\n", scenario, s.stats.executed[scenario])
	}

	_, _ = fmt.Fprintf(out, "Rejected cancellations: %d\n", s.stats.rejected)
	_, _ = fmt.Fprintf(out, "Cashback requests: %d fulfilled, %d not fulfilled\n", fulfilled, notFulfilled)
	_, _ = fmt.Fprintf(out, "Active contracts: %d\n", len(state.Contracts))
	_, _ = fmt.Fprintf(out, "Cash register balance: %s\n", state.Cash.String())
	_, _ = fmt.Fprintf(out, "Journaled actions: %d\n", journal.Count)

	return nil
}
