// Package cashregister reduces actions into the cash register balance.
package cashregister

import (
	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// Reduce folds one action into the cash register balance.
// Negative fees or fines are applied as given.
func Reduce(balance core.Money, action core.Action) core.Money {
	switch a := action.(type) {
	case core.CreateContract:
		return balance.Add(a.Fee)

	case core.CancelContract:
		return balance.Add(a.Fine)

	case core.PurchaseProduct:
		return balance.Add(a.RegisterShare())

	default:
		return balance
	}
}
