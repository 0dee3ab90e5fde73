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
)

func Test_FilterBuilder_SanitizesActionTypes(t *testing.T) {
	// act
	filter := ledger.BuildActionFilter().
		Matching().
		AnyActionTypeOf(core.RequestCashbackActionType, "", core.CreateContractActionType, core.RequestCashbackActionType).
		Finalize()

	// assert
	require.Len(t, filter.Items(), 1)
	assert.Equal(t,
		[]string{core.CreateContractActionType, core.RequestCashbackActionType},
		filter.Items()[0].ActionTypes(),
		"Should be sorted, deduplicated, and without empty types")
}

func Test_FilterBuilder_SanitizesPredicates(t *testing.T) {
	// act
	filter := ledger.BuildActionFilter().
		Matching().
		AnyPredicateOf(ledger.P("CustomerName", "Bob"), ledger.P("", "x"), ledger.P("CustomerName", "Ana"), ledger.P("CustomerName", "Bob")).
		Finalize()

	// assert
	require.Len(t, filter.Items(), 1)
	assert.Equal(t,
		[]ledger.FilterPredicate{ledger.P("CustomerName", "Ana"), ledger.P("CustomerName", "Bob")},
		filter.Items()[0].Predicates())
	assert.False(t, filter.Items()[0].AllPredicatesMustMatch())
}

func Test_FilterBuilder_OrMatching_BuildsMultipleItems(t *testing.T) {
	// act
	filter := ledger.BuildActionFilter().
		Matching().
		AnyActionTypeOf(core.CreateContractActionType).
		OrMatching().
		AllPredicatesOf(ledger.P("BuyerName", "Ana"), ledger.P("ProductName", "Mug")).
		AndAnyActionTypeOf(core.PurchaseProductActionType).
		Finalize()

	// assert
	require.Len(t, filter.Items(), 2)
	assert.Equal(t, []string{core.CreateContractActionType}, filter.Items()[0].ActionTypes())
	assert.True(t, filter.Items()[1].AllPredicatesMustMatch())
	assert.Equal(t, []string{core.PurchaseProductActionType}, filter.Items()[1].ActionTypes())
}

func Test_Filter_Matches(t *testing.T) {
	now := time.Now()
	purchase := givenStorableAction(t, core.BuildPurchaseProduct("Ana", "Mug", core.MoneyFromInt(12), now))
	request := givenStorableAction(t, core.BuildRequestCashback("Bob", core.MoneyFromInt(5), now))

	testCases := []struct {
		name              string
		filter            ledger.Filter
		expectPurchaseHit bool
		expectRequestHit  bool
	}{
		{
			name:              "empty filter matches all",
			filter:            ledger.BuildActionFilter().MatchingAnyAction(),
			expectPurchaseHit: true,
			expectRequestHit:  true,
		},
		{
			name:              "action type only",
			filter:            ledger.BuildActionFilter().Matching().AnyActionTypeOf(core.RequestCashbackActionType).Finalize(),
			expectPurchaseHit: false,
			expectRequestHit:  true,
		},
		{
			name:              "any predicate over different field names",
			filter:            ledger.BuildActionFilter().Matching().AnyPredicateOf(ledger.P("BuyerName", "Ana"), ledger.P("CustomerName", "Bob")).Finalize(),
			expectPurchaseHit: true,
			expectRequestHit:  true,
		},
		{
			name: "all predicates must match",
			filter: ledger.BuildActionFilter().Matching().
				AllPredicatesOf(ledger.P("BuyerName", "Ana"), ledger.P("ProductName", "Book")).Finalize(),
			expectPurchaseHit: false,
			expectRequestHit:  false,
		},
		{
			name: "all predicates matching",
			filter: ledger.BuildActionFilter().Matching().
				AllPredicatesOf(ledger.P("BuyerName", "Ana"), ledger.P("ProductName", "Mug")).Finalize(),
			expectPurchaseHit: true,
			expectRequestHit:  false,
		},
		{
			name: "action type and predicate",
			filter: ledger.BuildActionFilter().Matching().
				AnyActionTypeOf(core.RequestCashbackActionType).
				AndAnyPredicateOf(ledger.P("CustomerName", "Ana")).Finalize(),
			expectPurchaseHit: false,
			expectRequestHit:  false,
		},
		{
			name:              "predicate over a decimal amount",
			filter:            ledger.BuildActionFilter().Matching().AnyPredicateOf(ledger.P("Amount", "5")).Finalize(),
			expectPurchaseHit: false,
			expectRequestHit:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			purchaseHit, err := tc.filter.Matches(purchase)
			require.NoError(t, err)
			requestHit, err := tc.filter.Matches(request)
			require.NoError(t, err)

			// assert
			assert.Equal(t, tc.expectPurchaseHit, purchaseHit, "purchase")
			assert.Equal(t, tc.expectRequestHit, requestHit, "request")
		})
	}
}

func Test_Filter_CustomerPredicates_SelectAllActionsOfOneCustomer(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := helper.GivenStore(t)
	helper.GivenDispatched(t, ctx, store,
		helper.FixtureContractCreated("Ana", 10, time.Now()),
		helper.FixtureProductPurchased("Ana", 100, time.Now()),
		helper.FixtureProductPurchased("Bob", 100, time.Now()),
		helper.FixtureContractCanceled("Ana", 100, time.Now()),
	)
	byName, byBuyer := ledger.CustomerPredicates("Ana")

	// act
	journaled, _, err := store.Query(ctx, ledger.BuildActionFilter().Matching().AnyPredicateOf(byName, byBuyer).Finalize())

	// assert
	require.NoError(t, err)
	require.Len(t, journaled, 3)
	for _, storableAction := range journaled {
		action, err := ledger.ActionFrom(storableAction)
		require.NoError(t, err)
		assert.Equal(t, "Ana", action.ForCustomer())
	}
}

func givenStorableAction(t *testing.T, action core.Action) ledger.StorableAction {
	t.Helper()

	storableAction, err := ledger.StorableActionFrom(1, action, ledger.BuildActionMetadata(helper.GivenUniqueID(t), helper.GivenUniqueID(t)))
	require.NoError(t, err, "error in arranging test data")

	return storableAction
}
