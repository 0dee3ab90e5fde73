package requestcashback

import (
	"context"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/shell"
)

// CommandHandler dispatches cashback requests and reports how the ledger recorded them.
type CommandHandler struct {
	store shell.DecidesOnState
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store shell.DecidesOnState) CommandHandler {
	return CommandHandler{
		store: store,
	}
}

// Handle dispatches REQUEST_CASHBACK. The business outcome is the status the history recorded for it,
// "FULFILLED" or "NOT_FULFILLED".
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	action := core.BuildRequestCashback(command.CustomerName, command.Amount, command.OccurredAt)

	if err := h.store.Dispatch(ctx, action); err != nil {
		return shell.HandlerResult{}, err
	}

	requests := h.store.GetState().CashbackHistory.RequestsOf(command.CustomerName)
	if len(requests) == 0 {
		return shell.NewDispatchedResult(), nil
	}

	return shell.NewOutcomeResult(string(requests[len(requests)-1].Status)), nil
}
