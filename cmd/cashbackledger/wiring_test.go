package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/cancelcontract"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/createcontract"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/cashregister"
	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
	"github.com/AntonStoeckl/cashback-ledger-go/ledger/oteladapters"
	"github.com/AntonStoeckl/cashback-ledger-go/shell"
	obsconfig "github.com/AntonStoeckl/cashback-ledger-go/testutil/observability/config"
)

func Test_NewApp_WiresOpenTelemetryThroughHandlersAndStore(t *testing.T) {
	// arrange
	tracer, spans := obsconfig.NewInMemoryTracer(t)
	meter, reader := obsconfig.NewManualMeter(t)
	a, err := newApp(core.DefaultFinePolicy(), observability{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: oteladapters.NewMetricsCollector(meter),
		tracing: oteladapters.NewTracingCollector(tracer),
	})
	require.NoError(t, err)
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	// act
	_, createErr := a.createContract.Handle(context.Background(), createcontract.BuildCommand("alice", core.MoneyFromInt(120), now))
	_, cancelErr := a.cancelContract.Handle(context.Background(), cancelcontract.BuildCommand("bob", now))
	_, queryErr := a.cashRegister.Handle(context.Background(), cashregister.BuildQuery())

	// assert
	require.NoError(t, createErr)
	require.ErrorIs(t, cancelErr, cancelcontract.ErrContractNotFound)
	require.ErrorIs(t, cancelErr, shell.ErrBusinessRuleViolated)
	require.NoError(t, queryErr)

	spanNames := obsconfig.SpanNames(spans)
	assert.Contains(t, spanNames, ledger.SpanNameDispatch)
	assert.Contains(t, spanNames, shell.SpanNameCommandHandle)
	assert.Contains(t, spanNames, shell.SpanNameQueryHandle)

	metricNames := obsconfig.CollectMetricNames(t, reader)
	assert.Contains(t, metricNames, ledger.MetricDispatchCalls)
	assert.Contains(t, metricNames, shell.CommandHandlerCallsMetric)
	assert.Contains(t, metricNames, shell.CommandHandlerRejectedMetric)
	assert.Contains(t, metricNames, shell.QueryHandlerCallsMetric)
}
