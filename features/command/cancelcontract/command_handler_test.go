package cancelcontract_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/features/command/cancelcontract"
	"github.com/AntonStoeckl/cashback-ledger-go/shell"
	"github.com/AntonStoeckl/cashback-ledger-go/testutil/helper"
)

func Test_CommandHandler_Handle_EarlyCancellationChargesFine(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := helper.GivenStore(t)
	start := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	helper.GivenDispatched(t, ctx, store,
		helper.FixtureContractCreated("alice", 30, start),
		helper.FixtureContractCreated("alice", 40, start.AddDate(0, 1, 0)),
		helper.FixtureContractCreated("bob", 50, start),
	)
	handler := cancelcontract.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, cancelcontract.BuildCommand("alice", start.AddDate(0, 2, 0)))

	// assert
	require.NoError(t, err)
	assert.Equal(t, shell.OutcomeDispatched, result.BusinessOutcome)

	state := store.GetState()
	require.Len(t, state.Contracts, 1, "every contract of alice should be removed")
	assert.Equal(t, "bob", state.Contracts[0].CustomerName)
	helper.AssertMoney(t, "220", state.Cash, "fees 120 plus fine 100")
}

func Test_CommandHandler_Handle_WithFinePolicy(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := helper.GivenStore(t)
	start := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	helper.GivenDispatched(t, ctx, store, helper.FixtureContractCreated("alice", 0, start))
	handler := cancelcontract.NewCommandHandler(
		store,
		cancelcontract.WithFinePolicy(core.FinePolicy{ThresholdMonths: 1, Amount: helper.Money(t, "25")}),
	)

	// act
	_, err := handler.Handle(ctx, cancelcontract.BuildCommand("alice", start.AddDate(0, 0, 5)))

	// assert
	require.NoError(t, err)
	helper.AssertMoney(t, "25", store.GetState().Cash)
}

func Test_CommandHandler_Handle_Error_ContractNotFound(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := helper.GivenStore(t)
	handler := cancelcontract.NewCommandHandler(store)

	// act
	result, err := handler.Handle(ctx, cancelcontract.BuildCommand("ghost", time.Unix(0, 0).UTC()))

	// assert
	assert.ErrorIs(t, err, cancelcontract.ErrContractNotFound)
	assert.ErrorIs(t, err, shell.ErrBusinessRuleViolated)
	assert.True(t, result.Rejected())

	actions, queryErr := store.Actions(ctx, helper.FilterAllActionsForCustomer("ghost"))
	require.NoError(t, queryErr)
	assert.Empty(t, actions, "nothing should be dispatched")
	helper.AssertMoney(t, "0", store.GetState().Cash)
}
