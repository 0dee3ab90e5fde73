package activecontracts

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

// Handle returns all active contracts.
func (h QueryHandler) Handle(ctx context.Context, query Query) (ActiveContracts, error) {
	if err := ctx.Err(); err != nil {
		return ActiveContracts{}, err
	}

	return Project(h.store.GetState(), query), nil
}
