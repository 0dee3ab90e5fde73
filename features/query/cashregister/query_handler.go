package cashregister

import (
	"context"

	"github.com/AntonStoeckl/cashback-ledger-go/shell"
)

// QueryHandler reads the cash register from the current ledger state.
type QueryHandler struct {
	store shell.ReadsState
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store shell.ReadsState) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle returns the current cash.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (CashRegister, error) {
	if err := ctx.Err(); err != nil {
		return CashRegister{}, err
	}

	return CashRegister{Cash: h.store.GetState().Cash}, nil
}
