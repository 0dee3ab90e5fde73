// Package cashbackhistory reduces actions into the per-customer history of cashback requests.
package cashbackhistory

import (
	"maps"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
)

// Reduce folds one action into the cashback request history.
//
// The status of a REQUEST_CASHBACK is decided against balancesBeforeDispatch, which must be
// the cashback balances of the aggregate snapshot taken before this action is applied to any slice.
// The request is FULFILLED if the amount is at most that balance, NOT_FULFILLED otherwise.
func Reduce(
	current core.CashbackHistory,
	action core.Action,
	balancesBeforeDispatch core.CashbackBalances,
) core.CashbackHistory {

	a, ok := action.(core.RequestCashback)
	if !ok {
		return current
	}

	status := core.RequestNotFulfilled
	if balancesBeforeDispatch.Covers(a.CustomerName, a.Amount) {
		status = core.RequestFulfilled
	}

	previous := current.RequestsOf(a.CustomerName)
	requests := make(core.CashbackRequests, 0, len(previous)+1)
	requests = append(requests, previous...)
	requests = append(requests, core.CashbackRequest{Amount: a.Amount, Status: status})

	next := make(core.CashbackHistory, len(current)+1)
	maps.Copy(next, current)
	next[a.CustomerName] = requests

	return next
}
