package requestcashback_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/requestcashback"
	"github.com/AntonStoeckl/cashback-ledger-go/testutil/helper"
)

func Test_CommandHandler_Handle_Fulfilled(t *testing.T) {
	// arrange
	ctx := context.Background()
	fakeClock := time.Unix(0, 0).UTC()
	store := helper.GivenStore(t)
	helper.GivenDispatched(t, ctx, store, helper.FixtureProductPurchased("alice", 100, fakeClock))
	handler := requestcashback.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, requestcashback.BuildCommand("alice", helper.Money(t, "10"), fakeClock))

	// assert
	require.NoError(t, err)
	assert.Equal(t, string(core.RequestFulfilled), result.BusinessOutcome)
	helper.AssertMoney(t, "0", store.GetState().CashbackBalances.BalanceOf("alice"))
}

func Test_CommandHandler_Handle_NotFulfilled_IsNoError(t *testing.T) {
	// arrange
	ctx := context.Background()
	fakeClock := time.Unix(0, 0).UTC()
	store := helper.GivenStore(t)
	helper.GivenDispatched(t, ctx, store, helper.FixtureProductPurchased("alice", 50, fakeClock))
	handler := requestcashback.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, requestcashback.BuildCommand("alice", helper.Money(t, "5.01"), fakeClock))

	// assert
	require.NoError(t, err)
	assert.Equal(t, string(core.RequestNotFulfilled), result.BusinessOutcome)
	helper.AssertMoney(t, "5", store.GetState().CashbackBalances.BalanceOf("alice"))

	requests := store.GetState().CashbackHistory.RequestsOf("alice")
	require.Len(t, requests, 1)
	helper.AssertMoney(t, "5.01", requests[0].Amount)
}

func Test_CommandHandler_Handle_UnknownCustomer_ZeroAmountIsFulfilled(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := helper.GivenStore(t)
	handler := requestcashback.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, requestcashback.BuildCommand("nobody", helper.Money(t, "0"), time.Unix(0, 0).UTC()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, string(core.RequestFulfilled), result.BusinessOutcome)
}
