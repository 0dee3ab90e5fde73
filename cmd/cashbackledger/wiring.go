package main

import (
	"log/slog"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/cancelcontract"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/createcontract"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/purchaseproduct"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/requestcashback"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/actionlog"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/activecontracts"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/cashbackbalance"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/cashbackhistory"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/cashregister"
	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
	"github.com/AntonStoeckl/cashback-ledger-go/shell"
	"github.com/AntonStoeckl/cashback-ledger-go/shell/observable"
)

// observability bundles the collectors shared by the store and all handlers.
// Only logger is mandatory.
type observability struct {
	logger           *slog.Logger
	contextualLogger shell.ContextualLogger
	metrics          shell.MetricsCollector
	tracing          shell.TracingCollector
}

func (o observability) storeOptions() []ledger.Option {
	opts := []ledger.Option{ledger.WithLogger(o.logger)}

	if o.contextualLogger != nil {
		opts = append(opts, ledger.WithContextualLogger(o.contextualLogger))
	}

	if o.metrics != nil {
		opts = append(opts, ledger.WithMetrics(o.metrics))
	}

	if o.tracing != nil {
		opts = append(opts, ledger.WithTracing(o.tracing))
	}

	return opts
}

func (o observability) instrumentation() shell.Instrumentation {
	return shell.Instrumentation{
		Logger:           o.logger,
		ContextualLogger: o.contextualLogger,
		Metrics:          o.metrics,
		Tracing:          o.tracing,
	}
}

// app is one ledger session with every use case wrapped for observability.
type app struct {
	store *ledger.Store

	createContract  *observable.CommandWrapper[createcontract.Command]
	cancelContract  *observable.CommandWrapper[cancelcontract.Command]
	requestCashback *observable.CommandWrapper[requestcashback.Command]
	purchaseProduct *observable.CommandWrapper[purchaseproduct.Command]

	cashbackBalance *observable.QueryWrapper[cashbackbalance.Query, cashbackbalance.CashbackBalance]
	cashRegister    *observable.QueryWrapper[cashregister.Query, cashregister.CashRegister]
	cashbackHistory *observable.QueryWrapper[cashbackhistory.Query, cashbackhistory.CashbackHistory]
	activeContracts *observable.QueryWrapper[activecontracts.Query, activecontracts.ActiveContracts]
	actionLog       *observable.QueryWrapper[actionlog.Query, actionlog.ActionLog]
}

func newApp(finePolicy core.FinePolicy, o observability) (*app, error) {
	store, err := ledger.NewStore(o.storeOptions()...)
	if err != nil {
		return nil, err
	}

	a := &app{store: store}
	inst := o.instrumentation()

	if a.createContract, err = observable.NewCommandWrapper[createcontract.Command](
		createcontract.NewCommandHandler(store),
		observable.WithCommandInstrumentation[createcontract.Command](inst),
	); err != nil {
		return nil, err
	}

	if a.cancelContract, err = observable.NewCommandWrapper[cancelcontract.Command](
		cancelcontract.NewCommandHandler(store, cancelcontract.WithFinePolicy(finePolicy)),
		observable.WithCommandInstrumentation[cancelcontract.Command](inst),
	); err != nil {
		return nil, err
	}

	if a.requestCashback, err = observable.NewCommandWrapper[requestcashback.Command](
		requestcashback.NewCommandHandler(store),
		observable.WithCommandInstrumentation[requestcashback.Command](inst),
	); err != nil {
		return nil, err
	}

	if a.purchaseProduct, err = observable.NewCommandWrapper[purchaseproduct.Command](
		purchaseproduct.NewCommandHandler(store),
		observable.WithCommandInstrumentation[purchaseproduct.Command](inst),
	); err != nil {
		return nil, err
	}

	if a.cashbackBalance, err = observable.NewQueryWrapper[cashbackbalance.Query, cashbackbalance.CashbackBalance](
		cashbackbalance.NewQueryHandler(store),
		observable.WithQueryInstrumentation[cashbackbalance.Query, cashbackbalance.CashbackBalance](inst),
	); err != nil {
		return nil, err
	}

	if a.cashRegister, err = observable.NewQueryWrapper[cashregister.Query, cashregister.CashRegister](
		cashregister.NewQueryHandler(store),
		observable.WithQueryInstrumentation[cashregister.Query, cashregister.CashRegister](inst),
	); err != nil {
		return nil, err
	}

	if a.cashbackHistory, err = observable.NewQueryWrapper[cashbackhistory.Query, cashbackhistory.CashbackHistory](
		cashbackhistory.NewQueryHandler(store),
		observable.WithQueryInstrumentation[cashbackhistory.Query, cashbackhistory.CashbackHistory](inst),
	); err != nil {
		return nil, err
	}

	if a.activeContracts, err = observable.NewQueryWrapper[activecontracts.Query, activecontracts.ActiveContracts](
		activecontracts.NewQueryHandler(store),
		observable.WithQueryInstrumentation[activecontracts.Query, activecontracts.ActiveContracts](inst),
	); err != nil {
		return nil, err
	}

	if a.actionLog, err = observable.NewQueryWrapper[actionlog.Query, actionlog.ActionLog](
		actionlog.NewQueryHandler(store),
		observable.WithQueryInstrumentation[actionlog.Query, actionlog.ActionLog](inst),
	); err != nil {
		return nil, err
	}

	return a, nil
}
