// Package ledger provides the Store that holds the aggregate state of one session.
//
// The Store composes the four slice reducers into one aggregate reducer (see Reduce) and keeps
// a single mutable core.State value across calls. Every dispatched action is also appended to an
// in-memory journal of StorableAction records, which can be queried with a Filter and replayed.
//
// Dispatch evaluates all four reducers against the snapshot taken at the start of the call and
// commits the four new slices together. This is what lets the cashback history see the balance
// as it was before the request's own debit.
//
// Common usage pattern:
//
//	store, err := ledger.NewStore(ledger.WithLogger(logger))
//	if err != nil {
//		// handle error
//	}
//
//	err = store.Dispatch(ctx, core.BuildPurchaseProduct("Ana", "Mug", core.MoneyFromInt(100), time.Now()))
//	state := store.GetState()
//
//	filter := ledger.BuildActionFilter().
//		Matching().
//		AnyActionTypeOf(core.RequestCashbackActionType).
//		AndAnyPredicateOf(ledger.P("CustomerName", "Ana")).
//		Finalize()
//
//	journaled, maxSeq, err := store.Query(ctx, filter)
//
// The Store is meant to be owned by exactly one caller and is not safe for concurrent use.
// Nothing is persisted: the state and the journal end with the process.
package ledger
