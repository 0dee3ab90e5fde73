// Package contracts reduces actions into the sequence of active contracts.
package contracts

import (
	"slices"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// Reduce folds one action into the contracts slice.
//
//	CREATE_CONTRACT: appends a new contract
//	CANCEL_CONTRACT: removes every contract of the customer (unknown names leave the slice unchanged)
//	other actions:   identity
func Reduce(current core.Contracts, action core.Action) core.Contracts {
	switch a := action.(type) {
	case core.CreateContract:
		next := make(core.Contracts, 0, len(current)+1)
		next = append(next, current...)

		return append(next, core.ContractFrom(a))

	case core.CancelContract:
		if !slices.ContainsFunc(current, matchingCustomer(a.CustomerName)) {
			return current
		}

		return slices.DeleteFunc(slices.Clone(current), matchingCustomer(a.CustomerName))

	default:
		return current
	}
}

func matchingCustomer(customerName core.CustomerNameString) func(core.Contract) bool {
	return func(c core.Contract) bool {
		return c.CustomerName == customerName
	}
}
