package cashbackbalance

import (
	"context"

	"github.com/AntonStoeckl/cashback-ledger-go/shell"
)

// QueryHandler reads the current ledger state and delegates to Project.
type QueryHandler struct {
	store shell.ReadsState
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store shell.ReadsState) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle returns the balance of the queried customer.
func (h QueryHandler) Handle(ctx context.Context, query Query) (CashbackBalance, error) {
	if err := ctx.Err(); err != nil {
		return CashbackBalance{}, err
	}

	return Project(h.store.GetState(), query), nil
}
