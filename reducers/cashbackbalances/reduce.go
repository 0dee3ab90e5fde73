// Package cashbackbalances reduces actions into the per-customer cashback balances.
package cashbackbalances

import (
	"maps"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// Reduce folds one action into the cashback balances.
//
// A REQUEST_CASHBACK debits the customer only if the balance covers the amount, otherwise
// the balances stay untouched. The outcome itself is recorded by the cashbackhistory reducer.
// A PURCHASE_PRODUCT credits the buyer with the cashback share of the sale.
func Reduce(current core.CashbackBalances, action core.Action) core.CashbackBalances {
	switch a := action.(type) {
	case core.RequestCashback:
		if !current.Covers(a.CustomerName, a.Amount) {
			return current
		}

		return withBalance(current, a.CustomerName, current.BalanceOf(a.CustomerName).Sub(a.Amount))

	case core.PurchaseProduct:
		return withBalance(current, a.BuyerName, current.BalanceOf(a.BuyerName).Add(a.CashbackShare()))

	default:
		return current
	}
}

// withBalance returns a copy of balances with a single key replaced.
func withBalance(
	balances core.CashbackBalances,
	customerName core.CustomerNameString,
	balance core.Money,
) core.CashbackBalances {

	next := make(core.CashbackBalances, len(balances)+1)
	maps.Copy(next, balances)
	next[customerName] = balance

	return next
}
