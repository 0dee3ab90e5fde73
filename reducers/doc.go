// Package reducers groups the four slice reducers of the ledger.
//
// Each sub-package owns exactly one slice of core.State and exposes a pure Reduce function
// of the form (current slice, action) -> next slice. Reducers never mutate their input:
// they return the input unchanged for actions they do not handle, and a fresh copy otherwise,
// so snapshots handed out earlier remain valid.
//
// The cashbackhistory reducer additionally receives the cashback balances of the pre-dispatch
// snapshot, because the status of a request depends on the balance before the debit.
// The composition of all four reducers lives in the ledger package.
package reducers
