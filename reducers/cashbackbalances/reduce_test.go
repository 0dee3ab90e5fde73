package cashbackbalances_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/reducers/cashbackbalances"
	"github.com/AntonStoeckl/cashback-ledger-go/testutil/helper"
)

func Test_Reduce_PurchaseProduct_CreditsTenPercentToNewBuyer(t *testing.T) {
	// arrange
	current := core.CashbackBalances{}

	// act
	next := cashbackbalances.Reduce(current, core.BuildPurchaseProduct("Ana", "Mug", core.MoneyFromInt(100), time.Now()))

	// assert
	helper.AssertMoney(t, "10", next.BalanceOf("Ana"))
	assert.Empty(t, current, "Should not modify the input")
}

func Test_Reduce_PurchaseProduct_Accumulates(t *testing.T) {
	// arrange
	now := time.Now()
	current := cashbackbalances.Reduce(core.CashbackBalances{}, core.BuildPurchaseProduct("Ana", "Mug", core.MoneyFromInt(100), now))

	// act
	next := cashbackbalances.Reduce(current, core.BuildPurchaseProduct("Ana", "Pen", core.MoneyFromInt(30), now))

	// assert
	helper.AssertMoney(t, "13", next.BalanceOf("Ana"))
	helper.AssertMoney(t, "10", current.BalanceOf("Ana"))
}

func Test_Reduce_RequestCashback_DebitsWhenCovered(t *testing.T) {
	// arrange
	current := core.CashbackBalances{"Ana": core.MoneyFromInt(10), "Bob": core.MoneyFromInt(3)}

	// act
	next := cashbackbalances.Reduce(current, core.BuildRequestCashback("Ana", core.MoneyFromInt(4), time.Now()))

	// assert
	helper.AssertMoney(t, "6", next.BalanceOf("Ana"))
	helper.AssertMoney(t, "3", next.BalanceOf("Bob"))
	helper.AssertMoney(t, "10", current.BalanceOf("Ana"))
}

func Test_Reduce_RequestCashback_DebitsTheWholeBalance(t *testing.T) {
	// arrange
	current := core.CashbackBalances{"Ana": core.MoneyFromInt(10)}

	// act
	next := cashbackbalances.Reduce(current, core.BuildRequestCashback("Ana", core.MoneyFromInt(10), time.Now()))

	// assert
	helper.AssertMoney(t, "0", next.BalanceOf("Ana"))
}

func Test_Reduce_RequestCashback_InsufficientBalance_IsIdentity(t *testing.T) {
	testCases := []struct {
		name    string
		current core.CashbackBalances
	}{
		{name: "balance too low", current: core.CashbackBalances{"Carla": core.MoneyFromInt(4)}},
		{name: "absent balance", current: core.CashbackBalances{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			next := cashbackbalances.Reduce(tc.current, core.BuildRequestCashback("Carla", core.MoneyFromInt(5), time.Now()))

			// assert
			assert.Equal(t, tc.current, next, "Should leave the balances unchanged")
			_, exists := next["Carla"]
			assert.Equal(t, len(tc.current) > 0, exists, "Should not create an entry")
		})
	}
}

func Test_Reduce_OtherActions_AreIdentity(t *testing.T) {
	// arrange
	now := time.Now()
	current := core.CashbackBalances{"Ana": core.MoneyFromInt(10)}

	// act
	afterCreate := cashbackbalances.Reduce(current, core.BuildCreateContract(now, "Ana", core.MoneyFromInt(50)))
	afterCancel := cashbackbalances.Reduce(current, core.BuildCancelContract("Ana", core.MoneyFromInt(100), now))

	// assert
	assert.Equal(t, current, afterCreate)
	assert.Equal(t, current, afterCancel)
}
