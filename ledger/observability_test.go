package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
	"github.com/AntonStoeckl/cashback-ledger-go/testutil/helper"
	"github.com/AntonStoeckl/cashback-ledger-go/testutil/observability/testdoubles"
)

func Test_Observability_Dispatch_RecordsMetrics(t *testing.T) {
	// arrange
	metricsSpy := testdoubles.NewMetricsCollectorSpy()
	store := helper.GivenStore(t, ledger.WithMetrics(metricsSpy))

	// act
	helper.GivenDispatched(t, context.Background(), store,
		helper.FixtureContractCreated("Bob", 50, time.Now()),
		helper.FixtureProductPurchased("Ana", 100, time.Now()),
	)

	// assert
	assert.Len(t, metricsSpy.CounterRecordsFor(ledger.MetricDispatchCalls), 2)
	assert.True(t, metricsSpy.HasCounterRecordWithLabels(ledger.MetricDispatchCalls, map[string]string{
		"action_type": core.PurchaseProductActionType,
		"status":      ledger.StatusSuccess,
	}))
	assert.True(t, metricsSpy.HasDurationRecordWithLabels(ledger.MetricDispatchDuration, map[string]string{
		"action_type": core.CreateContractActionType,
	}))

	cash, found := metricsSpy.LastValueFor(ledger.MetricCashRegisterBalance)
	require.True(t, found)
	assert.InDelta(t, 140.0, cash, 0.0001)

	journalLength, found := metricsSpy.LastValueFor(ledger.MetricJournalLength)
	require.True(t, found)
	assert.InDelta(t, 2.0, journalLength, 0.0001)
}

func Test_Observability_Query_RecordsMetrics(t *testing.T) {
	// arrange
	ctx := context.Background()
	metricsSpy := testdoubles.NewMetricsCollectorSpy()
	store := helper.GivenStore(t, ledger.WithMetrics(metricsSpy))
	helper.GivenDispatched(t, ctx, store, helper.FixtureProductPurchased("Ana", 100, time.Now()))

	// act
	_, _, err := store.Query(ctx, ledger.BuildActionFilter().MatchingAnyAction())
	require.NoError(t, err)

	// assert
	assert.True(t, metricsSpy.HasDurationRecordWithLabels(ledger.MetricQueryDuration, map[string]string{"status": ledger.StatusSuccess}))
	queried, found := metricsSpy.LastValueFor(ledger.MetricActionsQueried)
	require.True(t, found)
	assert.InDelta(t, 1.0, queried, 0.0001)
}

func Test_Observability_Query_CanceledContext_RecordsError(t *testing.T) {
	// arrange
	metricsSpy := testdoubles.NewMetricsCollectorSpy()
	tracingSpy := testdoubles.NewTracingCollectorSpy()
	store := helper.GivenStore(t, ledger.WithMetrics(metricsSpy), ledger.WithTracing(tracingSpy))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	_, _, err := store.Query(ctx, ledger.BuildActionFilter().MatchingAnyAction())

	// assert
	require.Error(t, err)
	assert.True(t, metricsSpy.HasCounterRecordWithLabels(ledger.MetricLedgerErrors, map[string]string{
		"operation":  "query",
		"error_type": "context_canceled",
	}))

	spans := tracingSpy.SpanRecordsFor(ledger.SpanNameQuery)
	require.Len(t, spans, 1)
	assert.Equal(t, ledger.StatusError, spans[0].Status)
	assert.Equal(t, "context_canceled", spans[0].EndAttributes["error.type"])
}

func Test_Observability_Dispatch_RecordsSpan(t *testing.T) {
	// arrange
	tracingSpy := testdoubles.NewTracingCollectorSpy()
	store := helper.GivenStore(t, ledger.WithTracing(tracingSpy))

	// act
	helper.GivenDispatched(t, context.Background(), store, helper.FixtureCashbackRequested("Carla", 5, time.Now()))

	// assert
	spans := tracingSpy.SpanRecordsFor(ledger.SpanNameDispatch)
	require.Len(t, spans, 1)
	assert.True(t, spans[0].Finished)
	assert.Equal(t, ledger.StatusSuccess, spans[0].Status)
	assert.Equal(t, core.RequestCashbackActionType, spans[0].StartAttributes["action.type"])
	assert.Equal(t, "1", spans[0].EndAttributes["journal.sequence_number"])
	assert.Equal(t, ledger.StatusSuccess, spans[0].SpanContext.Status())
}

func Test_Observability_ContextualLogger_TakesPrecedence(t *testing.T) {
	// arrange
	plainLogger := testdoubles.NewContextualLoggerSpy()
	contextualLogger := testdoubles.NewContextualLoggerSpy()
	store := helper.GivenStore(t, ledger.WithLogger(plainLogger), ledger.WithContextualLogger(contextualLogger))

	// act
	helper.GivenDispatched(t, context.Background(), store, helper.FixtureContractCreated("Bob", 50, time.Now()))

	// assert
	record, found := contextualLogger.FindRecord("debug", "action dispatched")
	require.True(t, found)
	actionType, _ := record.Attr("action_type")
	assert.Equal(t, core.CreateContractActionType, actionType)
	customer, _ := record.Attr("customer")
	assert.Equal(t, "Bob", customer)
	assert.Zero(t, plainLogger.RecordCount(), "Plain logger should not be used")
}

func Test_Observability_PlainLogger_LogsQueries(t *testing.T) {
	// arrange
	ctx := context.Background()
	logger := testdoubles.NewContextualLoggerSpy()
	store := helper.GivenStore(t, ledger.WithLogger(logger))
	helper.GivenDispatched(t, ctx, store, helper.FixtureContractCreated("Bob", 50, time.Now()))

	// act
	_, _, err := store.Query(ctx, ledger.BuildActionFilter().MatchingAnyAction())
	require.NoError(t, err)

	// assert
	record, found := logger.FindRecord("info", "query completed")
	require.True(t, found)
	actionCount, _ := record.Attr("action_count")
	assert.Equal(t, 1, actionCount)
}
