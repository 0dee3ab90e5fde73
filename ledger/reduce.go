package ledger

import (
	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/reducers/cashbackbalances"
	"github.com/AntonStoeckl/cashback-ledger-go/reducers/cashbackhistory"
	"github.com/AntonStoeckl/cashback-ledger-go/reducers/cashregister"
	"github.com/AntonStoeckl/cashback-ledger-go/reducers/contracts"
)

// Reduce is the aggregate reducer. Each slice reducer sees the same snapshot, so the
// cashback history decides a request's status against the balance before its own debit.
// A nil action returns the snapshot unchanged.
func Reduce(snapshot core.State, action core.Action) core.State {
	if action == nil {
		return snapshot
	}

	return core.State{
		Contracts:        contracts.Reduce(snapshot.Contracts, action),
		Cash:             cashregister.Reduce(snapshot.Cash, action),
		CashbackBalances: cashbackbalances.Reduce(snapshot.CashbackBalances, action),
		CashbackHistory:  cashbackhistory.Reduce(snapshot.CashbackHistory, action, snapshot.CashbackBalances),
	}
}

// Replay folds actions in order, starting from core.EmptyState().
func Replay(actions core.Actions) core.State {
	state := core.EmptyState()

	for _, action := range actions {
		state = Reduce(state, action)
	}

	return state
}
