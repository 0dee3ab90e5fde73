package cashbackbalance

import (
	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// Project reads the balance of the queried customer from the state, defaulting to zero.
func Project(state core.State, query Query) CashbackBalance {
	return CashbackBalance{
		CustomerName: query.CustomerName,
		Balance:      state.CashbackBalances.BalanceOf(query.CustomerName),
	}
}
