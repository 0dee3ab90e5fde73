// Package shell contains the imperative shell around the pure core: the contracts for command and
// query handlers, their results, and the observability helpers shared by all feature slices.
//
// Feature slices in features/command and features/query depend on the small store interfaces declared
// here instead of on *ledger.Store, so they can be tested against any implementation.
package shell
