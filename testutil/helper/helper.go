// Package helper contains arrange and assert helpers shared by the tests of all packages.
package helper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
)

func GivenUniqueID(t testing.TB) uuid.UUID {
	id, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	return id
}

// Money parses a decimal amount like "12.50" and fails the test if it is malformed.
func Money(t testing.TB, amount string) core.Money {
	t.Helper()

	money, err := core.MoneyFromString(amount)
	require.NoError(t, err, "error in arranging test data")

	return money
}

// AssertMoney compares decimal values numerically, so "1.0" equals "1".
func AssertMoney(t testing.TB, expected string, actual core.Money, msgAndArgs ...any) {
	t.Helper()

	expectedMoney := Money(t, expected)
	if !expectedMoney.Equal(actual) {
		assert.Fail(t, "money mismatch: expected "+expected+", got "+actual.String(), msgAndArgs...)
	}
}

func GivenStore(t testing.TB, options ...ledger.Option) *ledger.Store {
	t.Helper()

	store, err := ledger.NewStore(options...)
	require.NoError(t, err, "error in arranging test data")

	return store
}

// GivenDispatched dispatches the actions in order and fails the test on the first error.
func GivenDispatched(t testing.TB, ctx context.Context, store *ledger.Store, actions ...core.Action) {
	t.Helper()

	for _, action := range actions {
		require.NoError(t, store.Dispatch(ctx, action), "error in arranging test data")
	}
}

func FixtureContractCreated(customerName string, fee int64, startDate time.Time) core.CreateContract {
	return core.BuildCreateContract(startDate, customerName, core.MoneyFromInt(fee))
}

func FixtureProductPurchased(buyerName string, amount int64, fakeClock time.Time) core.PurchaseProduct {
	return core.BuildPurchaseProduct(buyerName, "Learning Domain-Driven Design", core.MoneyFromInt(amount), fakeClock)
}

func FixtureCashbackRequested(customerName string, amount int64, fakeClock time.Time) core.RequestCashback {
	return core.BuildRequestCashback(customerName, core.MoneyFromInt(amount), fakeClock)
}

func FixtureContractCanceled(customerName string, fine int64, fakeClock time.Time) core.CancelContract {
	return core.BuildCancelContract(customerName, core.MoneyFromInt(fine), fakeClock)
}

// FilterAllActionsForCustomer selects every action type that concerns the customer.
func FilterAllActionsForCustomer(customerName string) ledger.Filter {
	byName, byBuyer := ledger.CustomerPredicates(customerName)

	return ledger.BuildActionFilter().
		Matching().
		AnyActionTypeOf(
			core.CreateContractActionType,
			core.CancelContractActionType,
			core.RequestCashbackActionType,
			core.PurchaseProductActionType).
		AndAnyPredicateOf(byName, byBuyer).
		Finalize()
}
