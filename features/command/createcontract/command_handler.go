package createcontract

import (
	"context"

	"github.com/AntonStoeckl/cashback-ledger-go/shell"
)

// CommandHandler runs the Decide -> Dispatch workflow for contract creation.
type CommandHandler struct {
	store shell.DispatchesActions
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store shell.DispatchesActions) CommandHandler {
	return CommandHandler{
		store: store,
	}
}

// Handle dispatches the contract to the ledger.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	result := Decide(command)

	if err := h.store.Dispatch(ctx, result.Action); err != nil {
		return shell.HandlerResult{}, err
	}

	return shell.NewDispatchedResult(), nil
}
