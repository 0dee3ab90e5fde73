package purchaseproduct

import (
	"context"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/shell"
)

// CommandHandler dispatches product sales to the ledger.
type CommandHandler struct {
	store shell.DispatchesActions
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(store shell.DispatchesActions) CommandHandler {
	return CommandHandler{
		store: store,
	}
}

// Handle dispatches PURCHASE_PRODUCT.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	action := core.BuildPurchaseProduct(command.BuyerName, command.ProductName, command.Amount, command.OccurredAt)

	if err := h.store.Dispatch(ctx, action); err != nil {
		return shell.HandlerResult{}, err
	}

	return shell.NewDispatchedResult(), nil
}
