package actionlog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/features/query/actionlog"
	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
	"github.com/AntonStoeckl/cashback-ledger-go/testutil/helper"
)

func Test_QueryHandler_Handle_AllCustomers(t *testing.T) {
	// arrange
	ctx := context.Background()
	fakeClock := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	store := helper.GivenStore(t)
	helper.GivenDispatched(t, ctx, store,
		helper.FixtureContractCreated("alice", 120, fakeClock),
		helper.FixtureProductPurchased("bob", 50, fakeClock.Add(time.Hour)),
		helper.FixtureCashbackRequested("bob", 5, fakeClock.Add(2*time.Hour)),
		helper.FixtureContractCanceled("alice", 100, fakeClock.Add(3*time.Hour)),
	)
	handler := actionlog.NewQueryHandler(store)

	// act
	result, err := handler.Handle(ctx, actionlog.BuildQuery())

	// assert
	require.NoError(t, err)
	require.Equal(t, 4, result.Count)
	assert.Equal(t, uint(4), result.GetSequenceNumber())

	for i, entry := range result.Entries {
		assert.Equal(t, uint(i+1), entry.SequenceNumber)
	}

	assert.Equal(t, core.CreateContractActionType, result.Entries[0].ActionType)
	assert.Equal(t, "alice signed a contract, fee 120", result.Entries[0].Description)
	assert.Equal(t, `bob bought "Learning Domain-Driven Design" for 50`, result.Entries[1].Description)
	assert.Equal(t, "bob requested 5 cashback", result.Entries[2].Description)
	assert.Equal(t, "alice canceled their contracts, fine 100", result.Entries[3].Description)
	assert.True(t, fakeClock.Add(3*time.Hour).Equal(result.Entries[3].OccurredAt))
}

func Test_QueryHandler_Handle_OneCustomer(t *testing.T) {
	// arrange
	ctx := context.Background()
	fakeClock := time.Unix(0, 0).UTC()
	store := helper.GivenStore(t)
	helper.GivenDispatched(t, ctx, store,
		helper.FixtureContractCreated("alice", 120, fakeClock),
		helper.FixtureProductPurchased("bob", 50, fakeClock),
		helper.FixtureProductPurchased("alice", 10, fakeClock),
	)
	handler := actionlog.NewQueryHandler(store)

	// act
	result, err := handler.Handle(ctx, actionlog.BuildQueryForCustomer("alice"))

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, uint(1), result.Entries[0].SequenceNumber)
	assert.Equal(t, uint(3), result.Entries[1].SequenceNumber)
	assert.Equal(t, "alice", result.Entries[1].CustomerName)
	assert.Equal(t, uint(3), result.SequenceNumber)
}

func Test_QueryHandler_Handle_CanceledContext(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	handler := actionlog.NewQueryHandler(helper.GivenStore(t))

	// act
	_, err := handler.Handle(ctx, actionlog.BuildQuery())

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Project_UnknownActionTypeFails(t *testing.T) {
	// arrange
	storable, err := ledger.BuildStorableAction(1, "REFUND", time.Unix(0, 0).UTC(), []byte(`{}`), []byte(`{}`))
	require.NoError(t, err, "error in arranging test data")

	// act
	_, err = actionlog.Project(ledger.StorableActions{storable}, actionlog.BuildQuery(), 1)

	// assert
	assert.ErrorIs(t, err, ledger.ErrUnknownActionType)
}
