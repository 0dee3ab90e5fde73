package shell

import (
	"context"

	"github.com/AntonStoeckl/cashback-ledger-go/core"
	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
)

// DispatchesActions is the write side of the ledger as seen by command handlers.
type DispatchesActions interface {
	Dispatch(ctx context.Context, action core.Action) error
}

// ReadsState is the read side of the ledger for handlers that work on the aggregate state.
type ReadsState interface {
	GetState() core.State
}

// QueriesActions is the read side of the ledger for handlers that work on the action journal.
type QueriesActions interface {
	Query(ctx context.Context, filter ledger.Filter) (
		ledger.StorableActions,
		ledger.MaxSequenceNumberUint,
		error,
	)
}

// DecidesOnState is what a command handler needs when its decision depends on the current state.
type DecidesOnState interface {
	DispatchesActions
	ReadsState
}

// Query represents the contract for all query types.
// Each query encapsulates the parameters needed to read one view of the ledger.
type Query interface {
	QueryType() string
}

// CoreQueryHandler defines the contract for components that process queries without observability concerns.
// The generic parameters Q and R tie each query to its result type.
type CoreQueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Command represents the contract for all command types.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CoreCommandHandler defines the contract for components that process commands without observability concerns.
// Handlers return a HandlerResult with the business outcome, which the observable wrapper turns into
// logs and metrics.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}
