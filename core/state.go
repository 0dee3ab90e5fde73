package core

import (
	"github.com/shopspring/decimal"
)

// State is the aggregate of all four slices.
// A State returned by the ledger is a snapshot: it must not be mutated by callers.
type State struct {
	Contracts        Contracts
	Cash             Money
	CashbackBalances CashbackBalances
	CashbackHistory  CashbackHistory
}

// EmptyState returns the state at the start of a session.
func EmptyState() State {
	return State{
		Contracts:        Contracts{},
		Cash:             decimal.Zero,
		CashbackBalances: CashbackBalances{},
		CashbackHistory:  CashbackHistory{},
	}
}

// FindContract returns the first contract of the customer, in creation order.
func (s State) FindContract(customerName CustomerNameString) (Contract, bool) {
	for _, contract := range s.Contracts {
		if contract.CustomerName == customerName {
			return contract, true
		}
	}

	return Contract{}, false
}
