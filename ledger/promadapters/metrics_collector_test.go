package promadapters_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
	"github.com/AntonStoeckl/cashback-ledger-go/ledger/promadapters"
	"github.com/AntonStoeckl/cashback-ledger-go/testutil/helper"
)

func Test_MetricsCollector_IncrementCounter(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := promadapters.NewMetricsCollector(registry)
	labels := map[string]string{"action_type": "CREATE_CONTRACT", "status": "success"}

	// act
	collector.IncrementCounter("ledger_dispatch_calls_total", labels)
	collector.IncrementCounter("ledger_dispatch_calls_total", labels)

	// assert
	expected := `
# HELP cashback_ledger_dispatch_calls_total Ledger operation counter.
# TYPE cashback_ledger_dispatch_calls_total counter
cashback_ledger_dispatch_calls_total{action_type="CREATE_CONTRACT",status="success"} 2
`
	err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "cashback_ledger_dispatch_calls_total")
	assert.NoError(t, err)
}

func Test_MetricsCollector_RecordValue(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := promadapters.NewMetricsCollector(registry)

	// act
	collector.RecordValue("ledger_cash_register_balance", 90, map[string]string{})
	collector.RecordValue("ledger_cash_register_balance", 140.5, map[string]string{})

	// assert
	expected := `
# HELP cashback_ledger_cash_register_balance Ledger current value.
# TYPE cashback_ledger_cash_register_balance gauge
cashback_ledger_cash_register_balance 140.5
`
	err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "cashback_ledger_cash_register_balance")
	assert.NoError(t, err)
}

func Test_MetricsCollector_RecordDuration(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := promadapters.NewMetricsCollector(registry)

	// act
	collector.RecordDuration("ledger_query_duration_seconds", 2*time.Millisecond, map[string]string{"status": "success"})
	collector.RecordDuration("ledger_query_duration_seconds", 3*time.Millisecond, map[string]string{"status": "success"})

	// assert
	count, err := testutil.GatherAndCount(registry, "cashback_ledger_query_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "One histogram series")
}

func Test_MetricsCollector_DropsCallsWithDifferentLabelNames(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := promadapters.NewMetricsCollector(registry)
	collector.IncrementCounter("ledger_errors_total", map[string]string{"operation": "dispatch"})

	// act + assert
	assert.NotPanics(t, func() {
		collector.IncrementCounter("ledger_errors_total", map[string]string{"operation": "dispatch", "extra": "x"})
	})

	count, err := testutil.GatherAndCount(registry, "cashback_ledger_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_MetricsCollector_WiredIntoStore(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	store := helper.GivenStore(t, ledger.WithMetrics(promadapters.NewMetricsCollector(registry)))

	// act
	helper.GivenDispatched(t, context.Background(), store,
		helper.FixtureContractCreated("Ana", 50, time.Now()),
		helper.FixtureContractCreated("Bob", 30, time.Now()),
	)

	// assert
	expected := `
# HELP cashback_ledger_cash_register_balance Ledger current value.
# TYPE cashback_ledger_cash_register_balance gauge
cashback_ledger_cash_register_balance 80
`
	err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "cashback_ledger_cash_register_balance")
	assert.NoError(t, err)
}

func Test_Router_ServesMetricsAndHealth(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	promadapters.NewMetricsCollector(registry).IncrementCounter("ledger_dispatch_calls_total", map[string]string{"status": "success"})
	server := httptest.NewServer(promadapters.NewRouter(registry))
	defer server.Close()

	// act
	metricsResp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = metricsResp.Body.Close() }()

	healthResp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = healthResp.Body.Close() }()

	// assert
	assert.Equal(t, http.StatusOK, metricsResp.StatusCode)
	assert.Equal(t, http.StatusOK, healthResp.StatusCode)

	body, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "cashback_ledger_dispatch_calls_total")
}
