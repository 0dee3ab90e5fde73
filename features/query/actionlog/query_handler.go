package actionlog

import (
	"context"

	"github.com/AntonStoeckl/cashback-ledger-go/shell"
)

// QueryHandler runs the Query -> Project workflow against the action journal.
type QueryHandler struct {
	store shell.QueriesActions
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store shell.QueriesActions) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle reads the journal and projects it into log entries.
func (h QueryHandler) Handle(ctx context.Context, query Query) (ActionLog, error) {
	storableActions, maxSeq, err := h.store.Query(ctx, BuildActionFilter(query))
	if err != nil {
		return ActionLog{}, err
	}

	return Project(storableActions, query, maxSeq)
}
