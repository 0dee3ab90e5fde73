package cashbackbalance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/cashback-ledger-go/features/query/cashbackbalance"
	"github.com/AntonStoeckl/cashback-ledger-go/testutil/helper"
)

func Test_QueryHandler_Handle_ReturnsBalanceAfterPurchasesAndRequests(t *testing.T) {
	// arrange
	ctx := context.Background()
	fakeClock := time.Unix(0, 0).UTC()
	store := helper.GivenStore(t)
	helper.GivenDispatched(t, ctx, store,
		helper.FixtureProductPurchased("alice", 100, fakeClock),
		helper.FixtureProductPurchased("alice", 50, fakeClock.Add(time.Minute)),
		helper.FixtureCashbackRequested("alice", 4, fakeClock.Add(2*time.Minute)),
	)
	handler := cashbackbalance.NewQueryHandler(store)

	// act
	result, err := handler.Handle(ctx, cashbackbalance.BuildQuery("alice"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "alice", result.CustomerName)
	helper.AssertMoney(t, "11", result.Balance)
}

func Test_QueryHandler_Handle_UnknownCustomerHasZeroBalance(t *testing.T) {
	// arrange
	store := helper.GivenStore(t)
	handler := cashbackbalance.NewQueryHandler(store)

	// act
	result, err := handler.Handle(context.Background(), cashbackbalance.BuildQuery("nobody"))

	// assert
	require.NoError(t, err)
	helper.AssertMoney(t, "0", result.Balance)
}

func Test_QueryHandler_Handle_CanceledContext(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	handler := cashbackbalance.NewQueryHandler(helper.GivenStore(t))

	// act
	_, err := handler.Handle(ctx, cashbackbalance.BuildQuery("alice"))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}
